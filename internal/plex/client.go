package plex

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTVURL       = "https://plex.tv"
	defaultDiscoverURL = "https://discover.provider.plex.tv"
	defaultTimeout     = 30 * time.Second
	defaultProduct     = "plexmcp"
)

// Client talks to a Plex Media Server and to the plex.tv account services
// (watchlist, devices).
type Client struct {
	baseURL     string
	token       string
	tvURL       string
	discoverURL string
	clientID    string
	product     string
	httpClient  *http.Client
	log         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithTVURL overrides the plex.tv base URL (for testing).
func WithTVURL(u string) Option {
	return func(c *Client) {
		c.tvURL = strings.TrimSuffix(u, "/")
	}
}

// WithDiscoverURL overrides the discover service base URL (for testing).
func WithDiscoverURL(u string) Option {
	return func(c *Client) {
		c.discoverURL = strings.TrimSuffix(u, "/")
	}
}

// WithClientIdentifier sets the X-Plex-Client-Identifier sent with requests.
func WithClientIdentifier(id string) Option {
	return func(c *Client) {
		c.clientID = id
	}
}

// WithLogger sets the logger. Requests are logged at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.With("component", "plex")
		}
	}
}

// NewClient creates a new Plex client.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		token:       token,
		tvURL:       defaultTVURL,
		discoverURL: defaultDiscoverURL,
		clientID:    defaultProduct,
		product:     defaultProduct,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues an authenticated GET and decodes the JSON body into out.
// out may be nil for endpoints whose body is ignored.
func (c *Client) get(ctx context.Context, op, rawURL string, query url.Values, header http.Header, out any) error {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("X-Plex-Client-Identifier", c.clientID)
	req.Header.Set("X-Plex-Product", c.product)
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if c.log != nil {
		c.log.Debug("plex request", "op", op, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func pageParams(start, size int) url.Values {
	q := url.Values{}
	q.Set("X-Plex-Container-Start", strconv.Itoa(start))
	q.Set("X-Plex-Container-Size", strconv.Itoa(size))
	return q
}

// newPage builds a Page, falling back to the container size when Plex omits
// totalSize (unpaged endpoints).
func newPage(mc MediaContainer) *Page {
	total := mc.TotalSize
	if total == 0 {
		total = max(mc.Size, len(mc.Metadata))
	}
	items := mc.Metadata
	if items == nil {
		items = []Metadata{}
	}
	return &Page{Items: items, TotalSize: total}
}

// GetIdentity returns the server name, machine identifier and version.
func (c *Client) GetIdentity(ctx context.Context) (*Identity, error) {
	var env envelope
	if err := c.get(ctx, "identity", c.baseURL+"/", nil, nil, &env); err != nil {
		return nil, err
	}
	return &Identity{
		Name:              env.MediaContainer.FriendlyName,
		MachineIdentifier: env.MediaContainer.MachineIdentifier,
		Version:           env.MediaContainer.Version,
	}, nil
}

// GetSections returns all library sections.
func (c *Client) GetSections(ctx context.Context) ([]Directory, error) {
	var env envelope
	if err := c.get(ctx, "list sections", c.baseURL+"/library/sections", nil, nil, &env); err != nil {
		return nil, err
	}
	if env.MediaContainer.Directory == nil {
		return []Directory{}, nil
	}
	return env.MediaContainer.Directory, nil
}

// GetLibraryItems returns one page of a library section filtered by tag and
// optional content type. Start and size are passed through verbatim.
func (c *Client) GetLibraryItems(ctx context.Context, q ItemsQuery) (*Page, error) {
	start, size := q.Window()
	tag := ParseTag(string(q.Tag))

	params := pageParams(start, size)
	if q.TypeCode != 0 {
		params.Set("type", strconv.Itoa(q.TypeCode))
	}

	reqURL := fmt.Sprintf("%s/library/sections/%s/%s", c.baseURL, url.PathEscape(q.SectionKey), tag)
	var env envelope
	if err := c.get(ctx, "list library items", reqURL, params, nil, &env); err != nil {
		return nil, err
	}
	return newPage(env.MediaContainer), nil
}

// ListLibraryItems returns every item in a library section without paging.
// typeCode of 0 means no type filter.
func (c *Client) ListLibraryItems(ctx context.Context, sectionKey string, typeCode int) ([]Metadata, error) {
	params := url.Values{}
	if typeCode != 0 {
		params.Set("type", strconv.Itoa(typeCode))
	}

	reqURL := fmt.Sprintf("%s/library/sections/%s/all", c.baseURL, url.PathEscape(sectionKey))
	var env envelope
	if err := c.get(ctx, "list all library items", reqURL, params, nil, &env); err != nil {
		return nil, err
	}
	return newPage(env.MediaContainer).Items, nil
}

// GetChildren returns the children of an item: seasons of a show, episodes
// of a season.
func (c *Client) GetChildren(ctx context.Context, ratingKey string) ([]Metadata, error) {
	reqURL := fmt.Sprintf("%s/library/metadata/%s/children", c.baseURL, url.PathEscape(ratingKey))
	var env envelope
	if err := c.get(ctx, "list children", reqURL, nil, nil, &env); err != nil {
		return nil, err
	}
	return newPage(env.MediaContainer).Items, nil
}

// GetMetadata returns a single item. It returns ErrNotFound when the server
// has no item with that key.
func (c *Client) GetMetadata(ctx context.Context, ratingKey string) (*Metadata, error) {
	reqURL := fmt.Sprintf("%s/library/metadata/%s", c.baseURL, url.PathEscape(ratingKey))
	var env envelope
	if err := c.get(ctx, "get metadata", reqURL, nil, nil, &env); err != nil {
		return nil, err
	}
	if len(env.MediaContainer.Metadata) == 0 {
		return nil, fmt.Errorf("media %q: %w", ratingKey, ErrNotFound)
	}
	return &env.MediaContainer.Metadata[0], nil
}

// searchContainer accepts both shapes the search endpoint uses: videos under
// Metadata and shows under Directory.
type searchContainer struct {
	MediaContainer struct {
		Metadata  []Metadata `json:"Metadata"`
		Directory []Metadata `json:"Directory"`
	} `json:"MediaContainer"`
}

// Search searches for items across all libraries.
func (c *Client) Search(ctx context.Context, query string) ([]Metadata, error) {
	params := url.Values{}
	params.Set("query", query)

	var result searchContainer
	if err := c.get(ctx, "search", c.baseURL+"/search", params, nil, &result); err != nil {
		return nil, err
	}

	mc := result.MediaContainer
	items := make([]Metadata, 0, len(mc.Metadata)+len(mc.Directory))
	items = append(items, mc.Metadata...)
	items = append(items, mc.Directory...)
	return items, nil
}

// GetWatchlist returns one page of the account watchlist from the discover
// service.
func (c *Client) GetWatchlist(ctx context.Context, q WatchlistQuery) (*Page, error) {
	start, size := q.Window()
	filter := ParseWatchlistFilter(string(q.Filter))

	reqURL := fmt.Sprintf("%s/library/sections/watchlist/%s", c.discoverURL, filter)
	var env envelope
	if err := c.get(ctx, "get watchlist", reqURL, pageParams(start, size), nil, &env); err != nil {
		return nil, err
	}
	return newPage(env.MediaContainer), nil
}

// GetDevices returns the devices registered to the account.
func (c *Client) GetDevices(ctx context.Context) ([]Device, error) {
	var devices []Device
	if err := c.get(ctx, "list devices", c.tvURL+"/api/v2/resources", nil, nil, &devices); err != nil {
		return nil, err
	}
	if devices == nil {
		return []Device{}, nil
	}
	return devices, nil
}

// Play starts playback of an item on a player. Both the device and the item
// are resolved first; a miss on either returns an error wrapping ErrNotFound.
func (c *Client) Play(ctx context.Context, clientID, ratingKey string) error {
	devices, err := c.GetDevices(ctx)
	if err != nil {
		return fmt.Errorf("resolve device: %w", err)
	}
	device, err := ResolveDevice(devices, clientID)
	if err != nil {
		return err
	}

	item, err := c.GetMetadata(ctx, ratingKey)
	if err != nil {
		return fmt.Errorf("resolve media: %w", err)
	}

	identity, err := c.GetIdentity(ctx)
	if err != nil {
		return fmt.Errorf("resolve server: %w", err)
	}

	params := url.Values{}
	params.Set("key", "/library/metadata/"+item.RatingKey)
	params.Set("machineIdentifier", identity.MachineIdentifier)
	params.Set("offset", "0")
	params.Set("type", "video")

	header := http.Header{}
	header.Set("X-Plex-Target-Client-Identifier", device.ClientIdentifier)

	if err := c.get(ctx, "play media", c.baseURL+"/player/playback/playMedia", params, header, nil); err != nil {
		return err
	}

	if c.log != nil {
		c.log.Info("playback started", "device", device.Name, "client_id", device.ClientIdentifier, "media", item.RatingKey)
	}
	return nil
}
