package sqlite

import (
	"database/sql"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "modernc.org/sqlite"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task/repository"
	pkgLog "ai-scheduler/pkg/log"
)

const cacheSize = 256

type implRepository struct {
	db    *sql.DB
	cache *lru.Cache[string, model.Task]
	l     pkgLog.Logger
}

// Open opens (or creates) the SQLite database at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// WAL for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT    PRIMARY KEY,
		title      TEXT    NOT NULL,
		who        TEXT    NOT NULL DEFAULT '',
		start_at   TEXT    NOT NULL,
		end_at     TEXT,
		repeat     TEXT    NOT NULL DEFAULT 'none',
		remind     TEXT    NOT NULL DEFAULT '15',
		notes      TEXT    NOT NULL DEFAULT '',
		done       INTEGER NOT NULL DEFAULT 0,
		chat_id    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT    NOT NULL,
		updated_at TEXT    NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_start_at ON tasks(start_at)"); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return db, nil
}

// New creates a new SQLite-backed task repository with a small read cache
// in front of GetTask.
func New(db *sql.DB, l pkgLog.Logger) (repository.TaskRepository, error) {
	cache, err := lru.New[string, model.Task](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &implRepository{
		db:    db,
		cache: cache,
		l:     l,
	}, nil
}
