// internal/state/interface.go
package state

import (
	"context"

	"github.com/llehouerou/folio/internal/media"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveReading(r Reading)
	GetReading(issuePath string) (*Reading, error)
	AddEmbed(ctx context.Context, issuePath, pageID string, e media.Embed) (media.Embed, error)
	Embeds(issuePath, pageID string) ([]media.Embed, error)
	RemoveLastEmbed(ctx context.Context, issuePath, pageID string) (*media.Embed, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
