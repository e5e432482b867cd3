// Package analytics keeps privacy-conscious visit counters for the site.
//
// Client IPs are salted and hashed before they are stored, Do Not Track is
// honoured, and rows older than the retention window are purged. The default
// DSN is an in-memory database, so counters only live as long as the process.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fremyrosso/site/internal/nav"
)

// MemoryDSN opens a database that disappears with the process.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_at ON visits(at);
CREATE TABLE IF NOT EXISTS navigations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	section TEXT NOT NULL,
	at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS navigations_at ON navigations(at);
`

// Options configures a Store.
type Options struct {
	// DSN defaults to MemoryDSN.
	DSN string
	// Retention is how long rows are kept. Zero keeps twelve months.
	Retention time.Duration
	// Salt is mixed into IP hashes. Empty generates a random one, which
	// makes hashes unlinkable across restarts.
	Salt string
}

// DefaultRetention is twelve months.
const DefaultRetention = 365 * 24 * time.Hour

// Store records visits and section navigations.
type Store struct {
	db        *sql.DB
	salt      string
	retention time.Duration
	now       func() time.Time
}

// Open opens the database and creates the schema.
func Open(opts Options) (*Store, error) {
	dsn := opts.DSN
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening analytics database: %w", err)
	}
	if dsn == MemoryDSN {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating analytics schema: %w", err)
	}

	salt := opts.Salt
	if salt == "" {
		salt, err = randomSalt()
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	retention := opts.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &Store{db: db, salt: salt, retention: retention, now: time.Now}, nil
}

func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating hashing salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP returns a stable, truncated hash of ip for this store's salt.
func (s *Store) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordNavigation stores one in-page navigation to section.
func (s *Store) RecordNavigation(ctx context.Context, ip string, section nav.Section) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO navigations (hashed_ip, section, at) VALUES (?, ?, ?)`,
		s.HashIP(ip), section.ID(), s.now().Unix())
	if err != nil {
		return fmt.Errorf("recording navigation: %w", err)
	}
	return nil
}

// Cleanup deletes rows older than the retention window and returns how many
// were removed.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention).Unix()

	var total int64
	for _, table := range []string{"visits", "navigations"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE at < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleaning up %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	if total > 0 {
		log.Printf("Privacy cleanup: removed %d analytics rows older than %s", total, s.retention)
	}
	return total, nil
}

// RunCleanup calls Cleanup now and then every interval until ctx is done.
func (s *Store) RunCleanup(ctx context.Context, interval time.Duration) {
	if _, err := s.Cleanup(ctx); err != nil {
		log.Printf("Error cleaning up analytics: %v", err)
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Cleanup(ctx); err != nil {
				log.Printf("Error cleaning up analytics: %v", err)
			}
		}
	}
}
