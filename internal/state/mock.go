// internal/state/mock.go
package state

import (
	"context"

	"github.com/llehouerou/folio/internal/media"
)

type embedKey struct {
	issue string
	page  string
}

// Mock is a test double for Manager.
type Mock struct {
	readings map[string]Reading
	embeds   map[embedKey][]media.Embed
	nextID   int64
	saves    int
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		readings: make(map[string]Reading),
		embeds:   make(map[embedKey][]media.Embed),
	}
}

func (m *Mock) SaveReading(r Reading) {
	m.saves++
	m.readings[r.IssuePath] = r
}

func (m *Mock) GetReading(issuePath string) (*Reading, error) {
	r, ok := m.readings[issuePath]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &r, nil
}

func (m *Mock) AddEmbed(_ context.Context, issuePath, pageID string, e media.Embed) (media.Embed, error) {
	m.nextID++
	e.ID = m.nextID
	k := embedKey{issuePath, pageID}
	m.embeds[k] = append(m.embeds[k], e)
	return e, nil
}

func (m *Mock) Embeds(issuePath, pageID string) ([]media.Embed, error) {
	return m.embeds[embedKey{issuePath, pageID}], nil
}

func (m *Mock) RemoveLastEmbed(_ context.Context, issuePath, pageID string) (*media.Embed, error) {
	k := embedKey{issuePath, pageID}
	list := m.embeds[k]
	if len(list) == 0 {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	last := list[len(list)-1]
	m.embeds[k] = list[:len(list)-1]
	return &last, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetReading(r Reading) { m.readings[r.IssuePath] = r }

func (m *Mock) SaveCount() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
