package localstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Sabirdaar/multi-lang-e-commerce/client/internal/types"
)

// Fixed keys the session credential is persisted under.
const (
	keyToken = "shopease.session.token"
	keyUser  = "shopease.session.user"
)

// Store is a sqlite-backed SessionStore.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the local state database and ensures its schema.
func Open() (*Store, error) {
	path, err := DBPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt opens the database at an explicit path. Used by tests.
func OpenAt(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS LocalState (
        Key TEXT PRIMARY KEY,
        Value TEXT NOT NULL
    );`)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the stored session, or (nil, nil) when logged out.
func (s *Store) Load(ctx context.Context) (*types.Session, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT Value FROM LocalState WHERE Key = ?`, keyToken).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var userJSON string
	err = s.db.QueryRowContext(ctx,
		`SELECT Value FROM LocalState WHERE Key = ?`, keyUser).Scan(&userJSON)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	sess := &types.Session{Token: token}
	if userJSON != "" {
		if err := json.Unmarshal([]byte(userJSON), &sess.User); err != nil {
			return nil, fmt.Errorf("corrupt stored user: %w", err)
		}
	}
	return sess, nil
}

// Save persists the session under the fixed keys.
func (s *Store) Save(ctx context.Context, sess *types.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	upsert := `INSERT INTO LocalState (Key, Value) VALUES (?, ?)
        ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value`
	if _, err := tx.ExecContext(ctx, upsert, keyToken, sess.Token); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, upsert, keyUser, string(userJSON)); err != nil {
		return err
	}
	return tx.Commit()
}

// Clear destroys the stored session.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM LocalState WHERE Key IN (?, ?)`, keyToken, keyUser)
	return err
}
