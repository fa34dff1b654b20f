package agent

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/sofi/internal/config"
	"github.com/roach88/sofi/internal/demo"
	"github.com/roach88/sofi/internal/sofi"
)

//go:embed schema.sql
var schemaSQL string

// SQLite is a database/sql-backed Agent: WAL mode, a single writer
// connection, and idempotent upserts.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) a SQLite database at path and
// applies the entities schema. Safe to call repeatedly against the same
// file.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("agent: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("agent: connect %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("agent: pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("agent: apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Export upserts e under name. A row already present for name is fully
// replaced.
func (s *SQLite) Export(name string, e *sofi.Entity) (Result, error) {
	if e == nil {
		return ResultError, fmt.Errorf("agent: export %q: nil entity", name)
	}

	integrity, err := config.FormatIntegrity(e.Integrity())
	if err != nil {
		return ResultError, fmt.Errorf("agent: export %q: %w", name, err)
	}
	minIntegrity, err := config.FormatMinIntegrity(e.MinIntegrity())
	if err != nil {
		return ResultError, fmt.Errorf("agent: export %q: %w", name, err)
	}
	accessCtrl, err := config.FormatACL(e.AccessCtrl())
	if err != nil {
		return ResultError, fmt.Errorf("agent: export %q: %w", name, err)
	}
	testFun, err := config.FormatIntegrityFunc(e.TestFun())
	if err != nil {
		return ResultError, fmt.Errorf("agent: export %q: %w", name, err)
	}
	provFun, err := config.FormatIntegrityFunc(e.ProvFun())
	if err != nil {
		return ResultError, fmt.Errorf("agent: export %q: %w", name, err)
	}
	recvFun, err := config.FormatIntegrityFunc(e.RecvFun())
	if err != nil {
		return ResultError, fmt.Errorf("agent: export %q: %w", name, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO entities
			(name, integrity, min_integrity, access_ctrl, test_fun, prov_fun, recv_fun, payload_data, trusted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)
		ON CONFLICT(name) DO UPDATE SET
			integrity = excluded.integrity,
			min_integrity = excluded.min_integrity,
			access_ctrl = excluded.access_ctrl,
			test_fun = excluded.test_fun,
			prov_fun = excluded.prov_fun,
			recv_fun = excluded.recv_fun,
			payload_data = excluded.payload_data,
			trusted = 1,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`,
		name, string(integrity), string(minIntegrity), string(accessCtrl),
		testFun, provFun, recvFun, demo.Payload(e).Data,
	)
	if err != nil {
		return ResultError, fmt.Errorf("agent: export %q: %w", name, err)
	}
	return ResultSuccess, nil
}

// MarkUntrusted flags name's stored row as written by an unauthenticated
// process, so the next Import reports ResultUntrusted regardless of
// whether the row's serialized fields still parse. It has no Agent
// interface counterpart — it exists for driver code or tests that need to
// simulate a compromised or externally-written record.
func (s *SQLite) MarkUntrusted(name string) error {
	_, err := s.db.Exec(`UPDATE entities SET trusted = 0 WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("agent: mark untrusted %q: %w", name, err)
	}
	return nil
}

// Import reconstructs the entity stored under name. A row flagged
// untrusted, or whose serialized fields fail to parse, is reported as
// ResultUntrusted rather than ResultError: the record exists but its
// content cannot be relied upon.
func (s *SQLite) Import(name string) (*sofi.Entity, Result, error) {
	var integrityRaw, minIntegrityRaw, accessCtrlRaw, testFun, provFun, recvFun, payloadData string
	var trusted bool
	err := s.db.QueryRow(`
		SELECT integrity, min_integrity, access_ctrl, test_fun, prov_fun, recv_fun, payload_data, trusted
		FROM entities WHERE name = ?
	`, name).Scan(&integrityRaw, &minIntegrityRaw, &accessCtrlRaw, &testFun, &provFun, &recvFun, &payloadData, &trusted)
	if err == sql.ErrNoRows {
		return nil, ResultError, fmt.Errorf("agent: import %q: not found", name)
	}
	if err != nil {
		return nil, ResultError, fmt.Errorf("agent: import %q: %w", name, err)
	}
	if !trusted {
		return nil, ResultUntrusted, fmt.Errorf("agent: import %q: row flagged untrusted", name)
	}

	integrity, err := config.ParseIntegrity([]byte(integrityRaw))
	if err != nil {
		return nil, ResultUntrusted, fmt.Errorf("agent: import %q: %w", name, err)
	}
	minIntegrity, err := config.ParseMinIntegrity([]byte(minIntegrityRaw))
	if err != nil {
		return nil, ResultUntrusted, fmt.Errorf("agent: import %q: %w", name, err)
	}
	accessCtrl, err := config.ParseACL([]byte(accessCtrlRaw), nil)
	if err != nil {
		return nil, ResultUntrusted, fmt.Errorf("agent: import %q: %w", name, err)
	}
	testFunc, err := config.ParseIntegrityFunc(testFun)
	if err != nil {
		return nil, ResultUntrusted, fmt.Errorf("agent: import %q: %w", name, err)
	}
	provFunc, err := config.ParseIntegrityFunc(provFun)
	if err != nil {
		return nil, ResultUntrusted, fmt.Errorf("agent: import %q: %w", name, err)
	}
	recvFunc, err := config.ParseIntegrityFunc(recvFun)
	if err != nil {
		return nil, ResultUntrusted, fmt.Errorf("agent: import %q: %w", name, err)
	}

	e := demo.NewEntity(name, integrity,
		sofi.WithMinIntegrity(minIntegrity),
		sofi.WithAccessCtrl(accessCtrl),
		sofi.WithTestFun(testFunc),
		sofi.WithProvFun(provFunc),
		sofi.WithRecvFun(recvFunc),
	)
	demo.Payload(e).Data = payloadData
	return e, ResultSuccess, nil
}

// Delete removes the stored row for name. Deleting an absent name is not
// an error.
func (s *SQLite) Delete(name string) (Result, error) {
	if _, err := s.db.Exec(`DELETE FROM entities WHERE name = ?`, name); err != nil {
		return ResultError, fmt.Errorf("agent: delete %q: %w", name, err)
	}
	return ResultSuccess, nil
}
