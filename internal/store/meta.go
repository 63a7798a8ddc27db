package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// Well-known app_meta keys.
const (
	MetaSeeded       = "defaults_seeded"
	MetaJWTSecret    = "jwt_secret"
	MetaPasswordHash = "password_hash"
)

// GetMeta returns the value stored under key, or "" if there is none.
func GetMeta(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM app_meta WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting %s: %w", key, err)
	}
	return value, nil
}

// SetMeta stores value under key, replacing any previous value.
func SetMeta(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO app_meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}

// DeleteMeta removes key. Removing a missing key is not an error.
func DeleteMeta(ctx context.Context, db *sql.DB, key string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM app_meta WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// GetJWTSecret retrieves the JWT secret from the database.
// If no secret exists, it generates one, stores it, and returns it.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO app_meta (key, value) VALUES (?, ?)`,
		MetaJWTSecret, hex.EncodeToString(buf),
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}

	return GetMeta(ctx, db, MetaJWTSecret)
}

// GetPasswordHash returns the owner's bcrypt password hash. An empty string
// means no password is set and the API is open.
func GetPasswordHash(ctx context.Context, db *sql.DB) (string, error) {
	return GetMeta(ctx, db, MetaPasswordHash)
}

// SetPasswordHash stores the owner's password hash. An empty hash removes
// the password.
func SetPasswordHash(ctx context.Context, db *sql.DB, hash string) error {
	if hash == "" {
		return DeleteMeta(ctx, db, MetaPasswordHash)
	}
	return SetMeta(ctx, db, MetaPasswordHash, hash)
}
