// Package mock provides a fixture-backed stand-in for the Plex client so the
// tool server runs without a live Plex server.
package mock

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/plexmcp/internal/plex"
)

//go:embed fixtures.json
var defaultFixtures []byte

// Fixtures is the static data set served by the mock client. Items and
// Children are keyed by section key and parent rating key.
type Fixtures struct {
	Identity  plex.MediaContainer        `json:"identity"`
	Sections  []plex.Directory           `json:"sections"`
	Items     map[string][]plex.Metadata `json:"items"`
	Children  map[string][]plex.Metadata `json:"children"`
	Watchlist []plex.Metadata            `json:"watchlist"`
	Available []string                   `json:"available"`
	Devices   []plex.Device              `json:"devices"`
}

// Client serves Fixtures through the same methods as plex.Client.
type Client struct {
	data Fixtures
	log  *slog.Logger
}

// DefaultFixtures decodes the embedded fixture set.
func DefaultFixtures() (Fixtures, error) {
	var f Fixtures
	if err := json.Unmarshal(defaultFixtures, &f); err != nil {
		return Fixtures{}, fmt.Errorf("decode mock fixtures: %w", err)
	}
	return f, nil
}

// New creates a mock client over the embedded fixtures.
func New(log *slog.Logger) (*Client, error) {
	f, err := DefaultFixtures()
	if err != nil {
		return nil, err
	}
	return NewWithFixtures(f, log), nil
}

// NewWithFixtures creates a mock client over caller-supplied data.
func NewWithFixtures(f Fixtures, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{data: f, log: log.With("component", "plex-mock")}
}

// GetIdentity returns the fixture server identity.
func (c *Client) GetIdentity(_ context.Context) (*plex.Identity, error) {
	return &plex.Identity{
		Name:              c.data.Identity.FriendlyName,
		MachineIdentifier: c.data.Identity.MachineIdentifier,
		Version:           c.data.Identity.Version,
	}, nil
}

// GetSections returns the fixture library sections.
func (c *Client) GetSections(_ context.Context) ([]plex.Directory, error) {
	return slices.Clone(orEmpty(c.data.Sections)), nil
}

// GetLibraryItems returns a page of a section. The tag is accepted but does
// not reorder fixtures.
func (c *Client) GetLibraryItems(_ context.Context, q plex.ItemsQuery) (*plex.Page, error) {
	items, ok := c.data.Items[q.SectionKey]
	if !ok {
		return nil, &plex.UpstreamError{Op: "list library items", StatusCode: 404, Status: "404 Not Found"}
	}
	items = filterType(items, q.TypeCode)
	start, size := q.Window()
	c.log.Debug("mock library items", "section", q.SectionKey, "tag", plex.ParseTag(string(q.Tag)), "start", start, "size", size)
	return paginate(items, start, size), nil
}

// ListLibraryItems returns every item of a section.
func (c *Client) ListLibraryItems(_ context.Context, sectionKey string, typeCode int) ([]plex.Metadata, error) {
	items, ok := c.data.Items[sectionKey]
	if !ok {
		return nil, &plex.UpstreamError{Op: "list all library items", StatusCode: 404, Status: "404 Not Found"}
	}
	return filterType(items, typeCode), nil
}

// GetChildren returns the children of an item, or an empty list.
func (c *Client) GetChildren(_ context.Context, ratingKey string) ([]plex.Metadata, error) {
	return slices.Clone(orEmpty(c.data.Children[ratingKey])), nil
}

// GetMetadata looks an item up across sections and children.
func (c *Client) GetMetadata(_ context.Context, ratingKey string) (*plex.Metadata, error) {
	for _, m := range c.all() {
		if m.RatingKey == ratingKey {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("media %q: %w", ratingKey, plex.ErrNotFound)
}

// Search matches titles by substring, ignoring case and accents.
func (c *Client) Search(_ context.Context, query string) ([]plex.Metadata, error) {
	needle := fold(query)
	results := []plex.Metadata{}
	for _, m := range c.all() {
		if strings.Contains(fold(m.Title), needle) {
			results = append(results, m)
		}
	}
	return results, nil
}

// GetWatchlist returns a page of the fixture watchlist. The available filter
// keeps only entries whose id is listed in Fixtures.Available.
func (c *Client) GetWatchlist(_ context.Context, q plex.WatchlistQuery) (*plex.Page, error) {
	items := orEmpty(c.data.Watchlist)
	if plex.ParseWatchlistFilter(string(q.Filter)) == plex.WatchlistAvailable {
		items = slices.DeleteFunc(slices.Clone(items), func(m plex.Metadata) bool {
			return !slices.Contains(c.data.Available, m.RatingKey)
		})
	}
	start, size := q.Window()
	return paginate(items, start, size), nil
}

// GetDevices returns the fixture devices.
func (c *Client) GetDevices(_ context.Context) ([]plex.Device, error) {
	return slices.Clone(orEmpty(c.data.Devices)), nil
}

// Play resolves the device and item like the real client and logs instead of
// issuing a playback command.
func (c *Client) Play(ctx context.Context, clientID, ratingKey string) error {
	device, err := plex.ResolveDevice(c.data.Devices, clientID)
	if err != nil {
		return err
	}
	item, err := c.GetMetadata(ctx, ratingKey)
	if err != nil {
		return fmt.Errorf("resolve media: %w", err)
	}
	c.log.Info("mock playback started", "device", device.Name, "media", item.Title)
	return nil
}

// all returns every library item and child item, sections first.
func (c *Client) all() []plex.Metadata {
	var out []plex.Metadata
	for _, s := range c.data.Sections {
		out = append(out, c.data.Items[s.Key]...)
	}
	keys := make([]string, 0, len(c.data.Children))
	for k := range c.data.Children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, c.data.Children[k]...)
	}
	return out
}

func filterType(items []plex.Metadata, typeCode int) []plex.Metadata {
	out := make([]plex.Metadata, 0, len(items))
	for _, m := range items {
		if typeCode == 0 || plex.TypeCode(m.Type) == typeCode {
			out = append(out, m)
		}
	}
	return out
}

// paginate slices items with the same start/size semantics as the server.
func paginate(items []plex.Metadata, start, size int) *plex.Page {
	total := len(items)
	if start > total {
		start = total
	}
	end := min(start+size, total)
	return &plex.Page{Items: slices.Clone(items[start:end]), TotalSize: total}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// fold lowercases s and strips combining marks so "amelie" matches "Amélie".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return cases.Fold().String(strings.TrimSpace(result))
}
