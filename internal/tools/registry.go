// Package tools declares the MCP tools that expose a Plex catalog and maps
// each tool call onto Catalog operations.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Default implementation identity reported to MCP clients.
const (
	DefaultName    = "plexmcp"
	DefaultVersion = "0.1.0"
)

// ErrInvalidInput is returned for arguments the input schema cannot reject,
// such as a whitespace-only query.
var ErrInvalidInput = errors.New("invalid input")

// Options configures a Registry.
type Options struct {
	Logger  *slog.Logger
	Name    string
	Version string
}

// Registry owns the MCP server and the tools registered on it.
type Registry struct {
	catalog Catalog
	server  *mcp.Server
	tools   []*mcp.Tool
	log     *slog.Logger
}

// New creates an MCP server backed by catalog and registers every tool.
func New(catalog Catalog, opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}

	r := &Registry{
		catalog: catalog,
		log:     opts.Logger.With("component", "tools"),
	}
	r.server = mcp.NewServer(&mcp.Implementation{Name: opts.Name, Version: opts.Version},
		&mcp.ServerOptions{Logger: opts.Logger})
	r.register()
	r.log.Debug("tools registered", "count", len(r.tools))
	return r
}

// Server returns the MCP server every transport shares.
func (r *Registry) Server() *mcp.Server {
	return r.server
}

// Tools returns the declared tools in registration order.
func (r *Registry) Tools() []*mcp.Tool {
	return r.tools
}

// Connect attaches an in-process client to the server. The caller closes the
// returned session.
func (r *Registry) Connect(ctx context.Context) (*mcp.ClientSession, error) {
	serverSide, clientSide := mcp.NewInMemoryTransports()
	if _, err := r.server.Connect(ctx, serverSide, nil); err != nil {
		return nil, fmt.Errorf("connect server: %w", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: DefaultName + "-cli", Version: DefaultVersion}, nil)
	session, err := client.Connect(ctx, clientSide, nil)
	if err != nil {
		return nil, fmt.Errorf("connect client: %w", err)
	}
	return session, nil
}

func (r *Registry) register() {
	addTool(r, &mcp.Tool{
		Name:        "list-libraries",
		Description: "List the library sections on the Plex server.",
		Annotations: readOnly(),
	}, r.listLibraries)

	addTool(r, &mcp.Tool{
		Name: "list-library-contents",
		Description: "List items in a library section. Supports an optional content type filter, " +
			"a view tag (newest, recentlyAdded, recentlyViewed, onDeck, unwatched, collection) and pagination.",
		InputSchema: schemaFor[ListLibraryContentsInput](map[string][]any{
			"type": {"movie", "show", "season", "episode"},
		}),
		Annotations: readOnly(),
	}, r.listLibraryContents)

	addTool(r, &mcp.Tool{
		Name:        "list-movies",
		Description: "List every movie across all movie libraries.",
		Annotations: readOnly(),
	}, r.listMovies)

	addTool(r, &mcp.Tool{
		Name:        "list-seasons",
		Description: "List the seasons of a TV show.",
		Annotations: readOnly(),
	}, r.listSeasons)

	addTool(r, &mcp.Tool{
		Name:        "list-episodes",
		Description: "List the episodes of a season.",
		Annotations: readOnly(),
	}, r.listEpisodes)

	addTool(r, &mcp.Tool{
		Name:        "search",
		Description: "Search the Plex server for movies, shows and episodes by title.",
		Annotations: readOnly(),
	}, r.search)

	addTool(r, &mcp.Tool{
		Name:        "list-watchlist",
		Description: "List the account watchlist. The available filter keeps only items that can be played now.",
		InputSchema: schemaFor[ListWatchlistInput](map[string][]any{
			"filter": {"all", "available"},
		}),
		Annotations: readOnly(),
	}, r.listWatchlist)

	addTool(r, &mcp.Tool{
		Name:        "list-devices",
		Description: "List the devices and player clients registered to the Plex account.",
		Annotations: readOnly(),
	}, r.listDevices)

	addTool(r, &mcp.Tool{
		Name:        "play-media",
		Description: "Start playback of a media item on a player device.",
	}, r.playMedia)
}

// handlerFunc is the shape of every tool implementation: decoded input in,
// JSON envelope out.
type handlerFunc[In any] func(ctx context.Context, in In) (map[string]any, error)

// addTool registers h under t. Every call is timed and logged, and a panic in
// h becomes an error result instead of escaping the server.
func addTool[In any](r *Registry, t *mcp.Tool, h handlerFunc[In]) {
	name := t.Name
	mcp.AddTool(r.server, t, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (res *mcp.CallToolResult, out map[string]any, err error) {
		start := time.Now()
		callID := uuid.NewString()
		defer func() {
			if p := recover(); p != nil {
				r.log.Error("tool panicked", "tool", name, "call_id", callID, "panic", p)
				res, out, err = nil, nil, fmt.Errorf("%s: internal error", name)
			}
			attrs := []any{"tool", name, "call_id", callID, "duration_ms", time.Since(start).Milliseconds()}
			if err != nil {
				r.log.Warn("tool failed", append(attrs, "error", err)...)
				return
			}
			r.log.Info("tool called", attrs...)
		}()

		out, err = h(ctx, in)
		return nil, out, err
	})
	r.tools = append(r.tools, t)
}

// schemaFor infers the input schema of T and attaches enum constraints to the
// named properties. The input types are fixed at compile time, so a failure
// here is a programming error.
func schemaFor[T any](enums map[string][]any) *jsonschema.Schema {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		panic(fmt.Sprintf("tools: infer schema for %T: %v", *new(T), err))
	}
	for prop, values := range enums {
		p, ok := s.Properties[prop]
		if !ok {
			panic(fmt.Sprintf("tools: schema for %T has no property %q", *new(T), prop))
		}
		p.Enum = values
	}
	return s
}

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{ReadOnlyHint: true}
}
