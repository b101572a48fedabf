// Package state persists reading position and page embeds in sqlite.
package state

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/folio/internal/media"
)

const (
	appName      = "folio"
	dbFileName   = "folio.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]Reading
}

// Open opens the state database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return openAt(dbPath)
}

func openAt(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return newManager(db), nil
}

func newManager(db *sql.DB) *Manager {
	return &Manager{db: db, pending: make(map[string]Reading)}
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.takePending()
	m.saveMu.Unlock()

	m.flush(pending)

	return m.db.Close()
}

// GetReading returns the saved position for an issue, or nil if none.
// Positions still waiting for the debounced write are returned first.
func (m *Manager) GetReading(issuePath string) (*Reading, error) {
	m.saveMu.Lock()
	r, ok := m.pending[issuePath]
	m.saveMu.Unlock()
	if ok {
		return &r, nil
	}
	return getReading(m.db, issuePath)
}

// SaveReading records the position for an issue. Writes are debounced so
// that rapid page flips produce a single write.
func (m *Manager) SaveReading(r Reading) {
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now()
	}

	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[r.IssuePath] = r

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.takePending()
		m.saveMu.Unlock()

		m.flush(pending)
	})
}

func (m *Manager) AddEmbed(ctx context.Context, issuePath, pageID string, e media.Embed) (media.Embed, error) {
	return addEmbed(ctx, m.db, issuePath, pageID, e)
}

func (m *Manager) Embeds(issuePath, pageID string) ([]media.Embed, error) {
	return listEmbeds(m.db, issuePath, pageID)
}

// RemoveLastEmbed deletes the most recently attached embed of a page and
// returns it, or nil when the page has none.
func (m *Manager) RemoveLastEmbed(ctx context.Context, issuePath, pageID string) (*media.Embed, error) {
	return removeLastEmbed(ctx, m.db, issuePath, pageID)
}

// takePending must be called with saveMu held.
func (m *Manager) takePending() map[string]Reading {
	if len(m.pending) == 0 {
		return nil
	}
	pending := m.pending
	m.pending = make(map[string]Reading)
	return pending
}

func (m *Manager) flush(pending map[string]Reading) {
	for _, r := range pending {
		if err := saveReading(m.db, r); err != nil {
			slog.Error("save reading", slog.String("issue", r.IssuePath),
				slog.String("error", err.Error()))
		}
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
