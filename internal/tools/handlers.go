package tools

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/plexmcp/internal/media"
	"github.com/vmunix/plexmcp/internal/plex"
)

// NoInput is the argument type of tools that take no parameters.
type NoInput struct{}

// ListLibraryContentsInput holds the list-library-contents arguments.
type ListLibraryContentsInput struct {
	LibraryID string `json:"libraryId" jsonschema:"ID of the library section"`
	Type      string `json:"type,omitempty" jsonschema:"only return items of this content type"`
	Tag       string `json:"tag,omitempty" jsonschema:"library view to list; unknown values fall back to newest"`
	Start     int    `json:"start,omitempty" jsonschema:"offset of the first item (default 0)"`
	Size      int    `json:"size,omitempty" jsonschema:"maximum number of items to return (default 20)"`
}

// ShowInput holds the list-seasons arguments.
type ShowInput struct {
	ShowID string `json:"showId" jsonschema:"rating key of the show"`
}

// SeasonInput holds the list-episodes arguments.
type SeasonInput struct {
	SeasonID string `json:"seasonId" jsonschema:"rating key of the season"`
}

// SearchInput holds the search arguments.
type SearchInput struct {
	Query string `json:"query" jsonschema:"title text to search for"`
}

// ListWatchlistInput holds the list-watchlist arguments.
type ListWatchlistInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"all (default) or available"`
	Start  int    `json:"start,omitempty" jsonschema:"offset of the first item (default 0)"`
	Size   int    `json:"size,omitempty" jsonschema:"maximum number of items to return (default 20)"`
}

// PlayMediaInput holds the play-media arguments.
type PlayMediaInput struct {
	ClientID string `json:"clientId" jsonschema:"client identifier of the player device"`
	MediaID  string `json:"mediaId" jsonschema:"rating key of the item to play"`
}

func (r *Registry) listLibraries(ctx context.Context, _ NoInput) (map[string]any, error) {
	sections, err := r.catalog.GetSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	return map[string]any{"libraries": media.NormalizeLibraries(sections)}, nil
}

func (r *Registry) listLibraryContents(ctx context.Context, in ListLibraryContentsInput) (map[string]any, error) {
	if err := required("libraryId", in.LibraryID); err != nil {
		return nil, err
	}
	typeCode := plex.TypeCode(in.Type)
	if in.Type != "" && typeCode == 0 {
		return nil, fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, in.Type)
	}

	page, err := r.catalog.GetLibraryItems(ctx, plex.ItemsQuery{
		SectionKey: in.LibraryID,
		TypeCode:   typeCode,
		Tag:        plex.ParseTag(in.Tag),
		Start:      in.Start,
		Size:       in.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("list library %s: %w", in.LibraryID, err)
	}
	return map[string]any{
		"media":     media.NormalizeAll(page.Items),
		"totalSize": page.TotalSize,
	}, nil
}

// listMovies fetches every movie library concurrently and joins the results
// in library order.
func (r *Registry) listMovies(ctx context.Context, _ NoInput) (map[string]any, error) {
	sections, err := r.catalog.GetSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	var keys []string
	for _, s := range sections {
		if media.ParseKind(s.Type) == media.KindMovie {
			keys = append(keys, s.Key)
		}
	}

	perLibrary := make([][]plex.Metadata, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			items, err := r.catalog.ListLibraryItems(gctx, key, plex.TypeCodeMovie)
			if err != nil {
				return fmt.Errorf("list movies in library %s: %w", key, err)
			}
			perLibrary[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	movies := make([]media.Item, 0)
	for _, items := range perLibrary {
		movies = append(movies, media.NormalizeAll(items)...)
	}
	return map[string]any{"movies": movies, "totalSize": len(movies)}, nil
}

func (r *Registry) listSeasons(ctx context.Context, in ShowInput) (map[string]any, error) {
	if err := required("showId", in.ShowID); err != nil {
		return nil, err
	}
	children, err := r.catalog.GetChildren(ctx, in.ShowID)
	if err != nil {
		return nil, fmt.Errorf("list seasons of %s: %w", in.ShowID, err)
	}
	return map[string]any{"seasons": media.NormalizeAll(children)}, nil
}

func (r *Registry) listEpisodes(ctx context.Context, in SeasonInput) (map[string]any, error) {
	if err := required("seasonId", in.SeasonID); err != nil {
		return nil, err
	}
	children, err := r.catalog.GetChildren(ctx, in.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("list episodes of %s: %w", in.SeasonID, err)
	}
	return map[string]any{"episodes": media.NormalizeAll(children)}, nil
}

func (r *Registry) search(ctx context.Context, in SearchInput) (map[string]any, error) {
	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}
	results, err := r.catalog.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return map[string]any{
		"results":   media.NormalizeAll(results),
		"totalSize": len(results),
	}, nil
}

func (r *Registry) listWatchlist(ctx context.Context, in ListWatchlistInput) (map[string]any, error) {
	page, err := r.catalog.GetWatchlist(ctx, plex.WatchlistQuery{
		Filter: plex.ParseWatchlistFilter(in.Filter),
		Start:  in.Start,
		Size:   in.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return map[string]any{
		"watchlist": media.NormalizeAll(page.Items),
		"totalSize": page.TotalSize,
	}, nil
}

func (r *Registry) listDevices(ctx context.Context, _ NoInput) (map[string]any, error) {
	devices, err := r.catalog.GetDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return map[string]any{"devices": media.NormalizeDevices(devices)}, nil
}

func (r *Registry) playMedia(ctx context.Context, in PlayMediaInput) (map[string]any, error) {
	if err := required("clientId", in.ClientID); err != nil {
		return nil, err
	}
	if err := required("mediaId", in.MediaID); err != nil {
		return nil, err
	}
	if err := r.catalog.Play(ctx, in.ClientID, in.MediaID); err != nil {
		return nil, fmt.Errorf("play %s on %s: %w", in.MediaID, in.ClientID, err)
	}
	return map[string]any{
		"object": map[string]string{
			"clientId": in.ClientID,
			"mediaId":  in.MediaID,
			"status":   "playing",
		},
	}, nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	return nil
}
