package db

import (
	"context"
	"fmt"
)

// LoadSignatures returns every configured channel signature, keyed by the
// normalized channel identifier. Used once at startup to warm the in-memory
// mirror.
func (db *DB) LoadSignatures(ctx context.Context) (map[string]string, error) {
	rows, err := db.Pool.Query(ctx, "SELECT channel_id, signature FROM signatures")
	if err != nil {
		return nil, fmt.Errorf("load signatures: %w", err)
	}
	defer rows.Close()

	signatures := make(map[string]string)

	for rows.Next() {
		var channelID, signature string

		if err := rows.Scan(&channelID, &signature); err != nil {
			return nil, fmt.Errorf("scan signature row: %w", err)
		}

		signatures[channelID] = signature
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signature rows: %w", err)
	}

	return signatures, nil
}

// SaveSignature creates or overwrites the signature for a channel.
func (db *DB) SaveSignature(ctx context.Context, channelID, signature string) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO signatures (channel_id, signature)
		 VALUES ($1, $2)
		 ON CONFLICT (channel_id) DO UPDATE SET signature = EXCLUDED.signature, updated_at = now()`,
		channelID, SanitizeUTF8(signature))
	if err != nil {
		return fmt.Errorf("save signature for %s: %w", channelID, err)
	}

	return nil
}

// DeleteSignature removes the signature for a channel. Deleting an absent
// entry is not an error.
func (db *DB) DeleteSignature(ctx context.Context, channelID string) error {
	if _, err := db.Pool.Exec(ctx, "DELETE FROM signatures WHERE channel_id = $1", channelID); err != nil {
		return fmt.Errorf("delete signature for %s: %w", channelID, err)
	}

	return nil
}
