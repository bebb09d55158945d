// Package sqlite implements the grammar store with SQLite as the query engine
// and a JSONL file as the source of truth. The database is rebuilt from the
// JSONL file on every Attach.
package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// dbFileName is the query index inside DataDir.
const dbFileName = "sierra.db"

// Backend implements types.GrammarStore.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	now       func() time.Time
	writeFile func(path string, records []json.RawMessage) error
}

var _ types.GrammarStore = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{now: time.Now, writeFile: writeJSONL}
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, rebuilds the SQLite index and loads
// grammars.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The index is disposable; JSONL is authoritative.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := ensureJSONL(filepath.Join(dataDir, grammarsJSONL)); err != nil {
		db.Close()
		return err
	}
	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	config.DataDir = dataDir
	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the SQLite connection. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// SaveGrammar records content with a new UUID v7 and rewrites grammars.jsonl.
func (b *Backend) SaveGrammar(content string, tagCount int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}
	if content == "" {
		return "", types.ErrInvalidContent
	}

	sum := sha256.Sum256([]byte(content))
	rec := grammarJSON{
		GrammarID: generateUUID(),
		Content:   content,
		TagCount:  tagCount,
		Digest:    hex.EncodeToString(sum[:]),
		CreatedAt: b.now().UTC().Format(timeFormat),
	}

	_, err := b.db.Exec(
		`INSERT INTO grammars (grammar_id, content, tag_count, digest, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.GrammarID, rec.Content, rec.TagCount, rec.Digest, rec.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("inserting grammar: %w", err)
	}

	// The index must not hold a row the JSONL file lacks.
	if err := b.persistLocked(); err != nil {
		if _, delErr := b.db.Exec(`DELETE FROM grammars WHERE grammar_id = ?`, rec.GrammarID); delErr != nil {
			return "", errors.Join(err, fmt.Errorf("removing unsaved grammar: %w", delErr))
		}
		return "", err
	}
	return rec.GrammarID, nil
}

// GetGrammar returns the grammar with the given ID.
func (b *Backend) GetGrammar(id string) (*types.GrammarRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidID, id)
	}

	row := b.db.QueryRow(`SELECT grammar_id, content, tag_count, digest, created_at FROM grammars WHERE grammar_id = ?`, id)
	return scanGrammar(row)
}

// LatestGrammar returns the most recently saved grammar.
func (b *Backend) LatestGrammar() (*types.GrammarRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	row := b.db.QueryRow(`SELECT grammar_id, content, tag_count, digest, created_at FROM grammars
		ORDER BY created_at DESC, grammar_id DESC LIMIT 1`)
	return scanGrammar(row)
}

// ListGrammars returns every stored grammar, newest first.
func (b *Backend) ListGrammars() ([]*types.GrammarRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.queryAll("DESC")
	if err != nil {
		return nil, err
	}
	out := make([]*types.GrammarRecord, 0, len(rows))
	for _, g := range rows {
		rec, err := g.record()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// persistLocked rewrites grammars.jsonl from the index, oldest first.
// The caller must hold b.mu.
func (b *Backend) persistLocked() error {
	rows, err := b.queryAll("ASC")
	if err != nil {
		return err
	}
	records := make([]json.RawMessage, 0, len(rows))
	for _, g := range rows {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("encoding grammar %s: %w", g.GrammarID, err)
		}
		records = append(records, data)
	}
	if err := b.writeFile(filepath.Join(b.config.DataDir, grammarsJSONL), records); err != nil {
		return fmt.Errorf("persisting grammars: %w", err)
	}
	return nil
}

func (b *Backend) queryAll(order string) ([]grammarJSON, error) {
	rows, err := b.db.Query(fmt.Sprintf(`SELECT grammar_id, content, tag_count, digest, created_at FROM grammars
		ORDER BY created_at %[1]s, grammar_id %[1]s`, order))
	if err != nil {
		return nil, fmt.Errorf("querying grammars: %w", err)
	}
	defer rows.Close()

	var out []grammarJSON
	for rows.Next() {
		var g grammarJSON
		if err := rows.Scan(&g.GrammarID, &g.Content, &g.TagCount, &g.Digest, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning grammar: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating grammars: %w", err)
	}
	return out, nil
}

func scanGrammar(row *sql.Row) (*types.GrammarRecord, error) {
	var g grammarJSON
	err := row.Scan(&g.GrammarID, &g.Content, &g.TagCount, &g.Digest, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning grammar: %w", err)
	}
	return g.record()
}

// generateUUID generates a new UUID v7 for grammar IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
