package tools

import (
	"context"

	"github.com/vmunix/plexmcp/internal/plex"
)

//go:generate mockgen -destination=mocks/catalog.go -package=mocks . Catalog

// Catalog is the media-server surface the tools read from. Both
// *plex.Client and *mock.Client satisfy it.
type Catalog interface {
	GetIdentity(ctx context.Context) (*plex.Identity, error)
	GetSections(ctx context.Context) ([]plex.Directory, error)
	GetLibraryItems(ctx context.Context, q plex.ItemsQuery) (*plex.Page, error)
	ListLibraryItems(ctx context.Context, sectionKey string, typeCode int) ([]plex.Metadata, error)
	GetChildren(ctx context.Context, ratingKey string) ([]plex.Metadata, error)
	GetMetadata(ctx context.Context, ratingKey string) (*plex.Metadata, error)
	Search(ctx context.Context, query string) ([]plex.Metadata, error)
	GetWatchlist(ctx context.Context, q plex.WatchlistQuery) (*plex.Page, error)
	GetDevices(ctx context.Context) ([]plex.Device, error)
	Play(ctx context.Context, clientID, ratingKey string) error
}
