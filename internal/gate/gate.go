// Package gate decides whether a user may invoke plan generation. Credits
// come in two shapes: "package" credits bundled with a purchase, bound to
// a cooldown between uses, and "single" credits with no cooldown. The gate
// sits in front of the engine; the engine itself never checks credits.
package gate

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Credit sources reported on decisions.
const (
	SourceSingle  = "single"
	SourcePackage = "package"
)

// ErrNoCredits is returned when a user has no usable credits at all.
var ErrNoCredits = errors.New("no generation credits")

// Decision is the outcome of a consumption attempt.
type Decision struct {
	Allowed    bool          `json:"allowed"`
	Source     string        `json:"source,omitempty"`
	RetryAfter time.Duration `json:"retryAfter,omitempty"`
}

// DB tracks per-user credit balances in a local SQLite database.
type DB struct {
	db       *sql.DB
	cooldown time.Duration
}

// Open opens (or creates) the credit database at dir/credits.db.
func Open(dir string, cooldown time.Duration) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating credits dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "credits.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening credits db: %w", err)
	}
	// SQLite allows a single writer; serializing through one connection
	// avoids SQLITE_BUSY under concurrent consumption.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS credits (
		user_id          INTEGER PRIMARY KEY,
		package_credits  INTEGER NOT NULL DEFAULT 0,
		single_credits   INTEGER NOT NULL DEFAULT 0,
		last_package_use TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating credits table: %w", err)
	}

	return &DB{db: db, cooldown: cooldown}, nil
}

// Grant adds credits to a user's balance.
func (g *DB) Grant(userID, packageCredits, singleCredits int) error {
	_, err := g.db.Exec(
		`INSERT INTO credits (user_id, package_credits, single_credits) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   package_credits = package_credits + excluded.package_credits,
		   single_credits  = single_credits + excluded.single_credits`,
		userID, packageCredits, singleCredits,
	)
	return err
}

// Consume spends one credit for the user if possible. Single credits are
// preferred since they carry no cooldown; package credits require the
// cooldown window since the last package use to have elapsed. Decrements
// are guarded in SQL so concurrent consumers can never drive a balance
// below zero.
func (g *DB) Consume(userID int, now time.Time) (Decision, error) {
	res, err := g.db.Exec(
		`UPDATE credits SET single_credits = single_credits - 1
		 WHERE user_id = ? AND single_credits > 0`, userID)
	if err != nil {
		return Decision{}, fmt.Errorf("consuming single credit: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return Decision{}, fmt.Errorf("consuming single credit: %w", err)
	} else if n > 0 {
		return Decision{Allowed: true, Source: SourceSingle}, nil
	}

	var pkg int
	var lastUse sql.NullTime
	err = g.db.QueryRow(
		`SELECT package_credits, last_package_use FROM credits WHERE user_id = ?`,
		userID,
	).Scan(&pkg, &lastUse)
	if errors.Is(err, sql.ErrNoRows) {
		return Decision{}, ErrNoCredits
	}
	if err != nil {
		return Decision{}, fmt.Errorf("querying credits: %w", err)
	}
	if pkg <= 0 {
		return Decision{}, ErrNoCredits
	}
	if lastUse.Valid {
		elapsed := now.Sub(lastUse.Time)
		if elapsed < g.cooldown {
			return Decision{Allowed: false, RetryAfter: g.cooldown - elapsed}, nil
		}
	}

	res, err = g.db.Exec(
		`UPDATE credits SET package_credits = package_credits - 1, last_package_use = ?
		 WHERE user_id = ? AND package_credits > 0`,
		now, userID)
	if err != nil {
		return Decision{}, fmt.Errorf("consuming package credit: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return Decision{}, fmt.Errorf("consuming package credit: %w", err)
	} else if n == 0 {
		// Another consumer took the last package credit between the read
		// and the decrement.
		return Decision{}, ErrNoCredits
	}
	return Decision{Allowed: true, Source: SourcePackage}, nil
}

// Balance returns a user's current credit counts.
func (g *DB) Balance(userID int) (packageCredits, singleCredits int, err error) {
	err = g.db.QueryRow(
		`SELECT package_credits, single_credits FROM credits WHERE user_id = ?`, userID,
	).Scan(&packageCredits, &singleCredits)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, nil
	}
	return packageCredits, singleCredits, err
}

// Close closes the credit database.
func (g *DB) Close() error {
	return g.db.Close()
}
