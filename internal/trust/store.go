package trust

import (
	"context"
	"encoding/pem"
	"fmt"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/database"
)

// credentialKindTrustAnchor marks rows holding root CA certificates.
const credentialKindTrustAnchor = "trust_anchor"

// SQLiteStore persists credentials in the device's local SQLite database.
// Credential ids are the table's rowids, so they are positive by
// construction and survive restarts.
type SQLiteStore struct {
	db *database.DB
}

// NewSQLiteStore creates the store and its schema if missing.
func NewSQLiteStore(ctx context.Context, db *database.DB) (*SQLiteStore, error) {
	const schema = `
CREATE TABLE IF NOT EXISTS credentials (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    device_idx INTEGER NOT NULL,
    kind       TEXT    NOT NULL,
    pem        BLOB    NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_credentials_device ON credentials(device_idx);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("creating credentials schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// AddTrustAnchor persists a root certificate and returns its credential id.
// The certificate must be a PEM CERTIFICATE block.
func (s *SQLiteStore) AddTrustAnchor(ctx context.Context, deviceIndex int, cert []byte) (int64, error) {
	if len(cert) == 0 {
		return -1, ErrEmptyCertificate
	}
	block, _ := pem.Decode(cert)
	if block == nil || block.Type != "CERTIFICATE" {
		return -1, ErrInvalidPEM
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (device_idx, kind, pem) VALUES (?, ?, ?)`,
		deviceIndex, credentialKindTrustAnchor, cert,
	)
	if err != nil {
		return -1, fmt.Errorf("inserting trust anchor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return -1, fmt.Errorf("reading credential id: %w", err)
	}
	return id, nil
}

// HasConfiguration reports whether any credential exists for the device.
// First-time initialisation (and with it the factory-reset bootstrap) runs
// only when this is false.
func (s *SQLiteStore) HasConfiguration(ctx context.Context, deviceIndex int) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM credentials WHERE device_idx = ?`,
		deviceIndex,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking device configuration: %w", err)
	}
	return count > 0, nil
}
