package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	// sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteRecorder buffers absorptions and writes them into a SQLite database
// in batches. Pending rows are flushed at exit.
type SQLiteRecorder struct {
	*sql.DB
	statement *sql.Stmt

	dbName    string
	runID     string
	batchSize int

	mu      sync.Mutex
	pending []absorption
}

type absorption struct {
	jaw      string
	material string
	position float64
}

// NewSQLiteRecorder opens (or creates) path.sqlite3. An empty path picks a
// name derived from a fresh run identifier.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	r := &SQLiteRecorder{
		runID:     xid.New().String(),
		batchSize: 10000,
	}
	r.dbName = path
	if r.dbName == "" {
		r.dbName = "collimc_" + r.runID
	}

	db, err := sql.Open("sqlite", r.dbName+".sqlite3")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.dbName, err)
	}
	r.DB = db
	if err := r.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	r.statement, err = db.Prepare(`INSERT INTO absorptions (run_id, jaw, material, position) VALUES (?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}

	atexit.Register(func() {
		if err := r.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	return r, nil
}

func (r *SQLiteRecorder) createTable() error {
	_, err := r.Exec(`CREATE TABLE IF NOT EXISTS absorptions (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id   TEXT NOT NULL,
		jaw      TEXT NOT NULL,
		material TEXT NOT NULL,
		position REAL NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create absorptions table: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RunID() string {
	return r.runID
}

func (r *SQLiteRecorder) Name() string {
	return r.dbName + ".sqlite3"
}

func (r *SQLiteRecorder) Record(jaw, material string, positions []float64) error {
	r.mu.Lock()
	for _, z := range positions {
		r.pending = append(r.pending, absorption{jaw: jaw, material: material, position: z})
	}
	full := len(r.pending) >= r.batchSize
	r.mu.Unlock()
	if full {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered absorptions in one transaction.
func (r *SQLiteRecorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) == 0 {
		return nil
	}

	tx, err := r.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	stmt := tx.Stmt(r.statement)
	for _, a := range r.pending {
		if _, err := stmt.Exec(r.runID, a.jaw, a.material, a.position); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert absorption in %s: %w", a.jaw, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit absorptions: %w", err)
	}
	r.pending = nil
	return nil
}

// Count returns the number of stored absorptions of the current run.
func (r *SQLiteRecorder) Count() (n int, err error) {
	err = r.QueryRow(`SELECT COUNT(*) FROM absorptions WHERE run_id = ?`, r.runID).Scan(&n)
	return
}

func (r *SQLiteRecorder) Close() error {
	if err := r.Flush(); err != nil {
		return err
	}
	r.statement.Close()
	if err := r.DB.Close(); err != nil {
		return err
	}
	log.Printf("absorptions stored in %s (run %s)", r.Name(), r.runID)
	return nil
}
