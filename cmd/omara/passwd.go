package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erazemk/omara/internal/auth"
	"github.com/erazemk/omara/internal/store"
)

func newPasswdCmd(a *app) *cobra.Command {
	var (
		password string
		unset    bool
	)

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Set or clear the owner password",
		Long: `Set the password that protects the API. Once set, every request except
/health and /auth/login needs a bearer token from POST /auth/login.

Without --password the new password is read from the first line of stdin.
--clear removes the password and opens the API again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var hash string
			if !unset {
				if !cmd.Flags().Changed("password") {
					line, err := readLine(cmd.InOrStdin())
					if err != nil {
						return err
					}
					password = line
				}

				var err error
				hash, err = auth.HashPassword(password)
				if err != nil {
					return err
				}
			}

			database, _, err := openStore(cmd.Context(), a.cfg.DB)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := store.SetPasswordHash(cmd.Context(), database, hash); err != nil {
				return err
			}

			if unset {
				slog.Info("owner password cleared, API is open")
				fmt.Fprintln(cmd.OutOrStdout(), "Password cleared.")
			} else {
				slog.Info("owner password set")
				fmt.Fprintln(cmd.OutOrStdout(), "Password set.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "new password")
	cmd.Flags().BoolVar(&unset, "clear", false, "remove the password")
	cmd.MarkFlagsMutuallyExclusive("password", "clear")
	return cmd
}

// readLine reads a single line, without its line ending.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no password given")
	}
	return line, nil
}
