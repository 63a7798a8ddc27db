package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName = "omara"

	keyDB   = "db"
	keyAddr = "addr"
	keyLog  = "log"

	defaultAddr = ":8080"
)

// config is the resolved runtime configuration.
type config struct {
	DB   string
	Addr string
	Log  string
}

// userDir returns the per-user omara directory, e.g. ~/.config/omara.
func userDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

// loadConfig resolves configuration from, lowest to highest priority:
// built-in defaults, omara.yaml, .env, OMARA_* environment, flags.
// A missing omara.yaml or .env is not an error; a missing --config file is.
func loadConfig(root *cobra.Command, configFile string) (*config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetDefault(keyAddr, defaultAddr)
	v.SetDefault(keyLog, "")

	dir, err := userDir()
	if err == nil {
		v.SetDefault(keyDB, filepath.Join(dir, appName+".sqlite3"))
	} else {
		v.SetDefault(keyDB, appName+".sqlite3")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(appName)
	v.AutomaticEnv()

	for _, key := range []string{keyDB, keyAddr, keyLog} {
		if err := v.BindPFlag(key, root.PersistentFlags().Lookup(key)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", key, err)
		}
	}

	return &config{
		DB:   v.GetString(keyDB),
		Addr: v.GetString(keyAddr),
		Log:  v.GetString(keyLog),
	}, nil
}
