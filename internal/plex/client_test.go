package plex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server
}

func TestClient_GetSections(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Plex-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MediaContainer":{"size":2,"Directory":[
			{"key":"1","title":"Movies","type":"movie","Location":[{"id":1,"path":"/movies"}]},
			{"key":"2","title":"TV Shows","type":"show"}
		]}}`))
	})

	client := NewClient(server.URL, "test-token")
	sections, err := client.GetSections(context.Background())
	require.NoError(t, err, "GetSections")

	require.Len(t, sections, 2)
	assert.Equal(t, "1", sections[0].Key)
	assert.Equal(t, "Movies", sections[0].Title)
	assert.Equal(t, "movie", sections[0].Type)
	assert.Equal(t, "/movies", sections[0].Location[0].Path)
	assert.Equal(t, "show", sections[1].Type)
}

func TestClient_GetSections_Empty(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"MediaContainer":{"size":0}}`))
	})

	client := NewClient(server.URL, "test-token")
	sections, err := client.GetSections(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sections)
	assert.Empty(t, sections)
}

func TestClient_GetLibraryItems_Pagination(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections/1/recentlyAdded", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("type"))
		assert.Equal(t, "10", r.URL.Query().Get("X-Plex-Container-Start"))
		assert.Equal(t, "2", r.URL.Query().Get("X-Plex-Container-Size"))

		_, _ = w.Write([]byte(`{"MediaContainer":{"size":2,"totalSize":57,"offset":10,"Metadata":[
			{"ratingKey":"100","type":"movie","title":"Alien","year":1979,"duration":7020000,"rating":8.5},
			{"ratingKey":"101","type":"movie","title":"Aliens","year":1986}
		]}}`))
	})

	client := NewClient(server.URL, "test-token")
	page, err := client.GetLibraryItems(context.Background(), ItemsQuery{
		SectionKey: "1",
		TypeCode:   TypeCodeMovie,
		Tag:        TagRecentlyAdded,
		Start:      10,
		Size:       2,
	})
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 57, page.TotalSize, "totalSize is the upstream count, not the page size")
	assert.Equal(t, "Alien", page.Items[0].Title)
	assert.Equal(t, 1979, page.Items[0].Year)
	assert.Equal(t, 7020000, page.Items[0].Duration)
}

func TestClient_GetLibraryItems_Defaults(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections/3/newest", r.URL.Path, "unknown tag falls back to newest")
		assert.Equal(t, "0", r.URL.Query().Get("X-Plex-Container-Start"))
		assert.Equal(t, "20", r.URL.Query().Get("X-Plex-Container-Size"))
		assert.Empty(t, r.URL.Query().Get("type"))

		_, _ = w.Write([]byte(`{"MediaContainer":{"size":1,"Metadata":[{"ratingKey":"5","type":"show","title":"Dark"}]}}`))
	})

	client := NewClient(server.URL, "test-token")
	page, err := client.GetLibraryItems(context.Background(), ItemsQuery{SectionKey: "3", Tag: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalSize, "falls back to size when totalSize is absent")
}

func TestClient_ListLibraryItems(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections/1/all", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("type"))
		assert.Empty(t, r.URL.Query().Get("X-Plex-Container-Size"))
		_, _ = w.Write([]byte(`{"MediaContainer":{"size":1,"Metadata":[{"ratingKey":"100","type":"movie","title":"Alien"}]}}`))
	})

	client := NewClient(server.URL, "test-token")
	items, err := client.ListLibraryItems(context.Background(), "1", TypeCodeMovie)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "100", items[0].RatingKey)
}

func TestClient_GetChildren(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/metadata/200/children", r.URL.Path)
		_, _ = w.Write([]byte(`{"MediaContainer":{"size":2,"Metadata":[
			{"ratingKey":"201","type":"season","title":"Season 1","index":1,"leafCount":10},
			{"ratingKey":"202","type":"season","title":"Season 2","index":2,"leafCount":8}
		]}}`))
	})

	client := NewClient(server.URL, "test-token")
	seasons, err := client.GetChildren(context.Background(), "200")
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, 2, seasons[1].Index)
	assert.Equal(t, 8, seasons[1].LeafCount)
}

func TestClient_GetMetadata_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "empty container",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"MediaContainer":{"size":0}}`))
			},
		},
		{
			name: "404 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.handler)
			client := NewClient(server.URL, "test-token")
			_, err := client.GetMetadata(context.Background(), "999")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
		})
	}
}

func TestClient_Search(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "the matrix", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"MediaContainer":{
			"Metadata":[{"ratingKey":"1","type":"movie","title":"The Matrix","year":1999}],
			"Directory":[{"ratingKey":"2","type":"show","title":"The Matrix Show","childCount":1}]
		}}`))
	})

	client := NewClient(server.URL, "test-token")
	items, err := client.Search(context.Background(), "the matrix")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "movie", items[0].Type)
	assert.Equal(t, "show", items[1].Type)
}

func TestClient_GetWatchlist(t *testing.T) {
	discover := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections/watchlist/available", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Plex-Token"))
		assert.Equal(t, "5", r.URL.Query().Get("X-Plex-Container-Size"))
		_, _ = w.Write([]byte(`{"MediaContainer":{"size":1,"totalSize":3,"Metadata":[{"ratingKey":"w1","type":"movie","title":"Dune"}]}}`))
	})

	client := NewClient("http://unused", "test-token", WithDiscoverURL(discover.URL))
	page, err := client.GetWatchlist(context.Background(), WatchlistQuery{Filter: WatchlistAvailable, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalSize)
	assert.Len(t, page.Items, 1)
}

func TestClient_GetDevices(t *testing.T) {
	tv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/resources", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"name":"Living Room","product":"Plex for Roku","productVersion":"8.0","platform":"Roku","platformVersion":"12","clientIdentifier":"roku-1","owned":true,"lastSeenAt":"2024-05-01T10:00:00Z","publicAddress":"1.2.3.4"}
		]`))
	})

	client := NewClient("http://unused", "test-token", WithTVURL(tv.URL))
	devices, err := client.GetDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "roku-1", devices[0].ClientIdentifier)
	assert.True(t, devices[0].Owned)
	assert.Equal(t, "1.2.3.4", devices[0].PublicAddress)
}

func TestClient_UpstreamError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := NewClient(server.URL, "test-token")
	_, err := client.GetSections(context.Background())
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream), "expected *UpstreamError, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.Contains(t, err.Error(), "500 Internal Server Error")
}

func TestClient_Unauthorized(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := NewClient(server.URL, "bad-token")
	_, err := client.GetSections(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ConnectionError(t *testing.T) {
	client := NewClient("http://localhost:1", "token")
	_, err := client.GetSections(context.Background())
	assert.Error(t, err, "expected connection error")
}

func TestClient_Play(t *testing.T) {
	var played bool
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`{"MediaContainer":{"friendlyName":"velcro","machineIdentifier":"srv-1","version":"1.40"}}`))
		case "/library/metadata/100":
			_, _ = w.Write([]byte(`{"MediaContainer":{"size":1,"Metadata":[{"ratingKey":"100","type":"movie","title":"Alien"}]}}`))
		case "/player/playback/playMedia":
			played = true
			assert.Equal(t, "roku-1", r.Header.Get("X-Plex-Target-Client-Identifier"))
			assert.Equal(t, "/library/metadata/100", r.URL.Query().Get("key"))
			assert.Equal(t, "srv-1", r.URL.Query().Get("machineIdentifier"))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	})
	tv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Living Room","clientIdentifier":"roku-1"}]`))
	})

	client := NewClient(server.URL, "test-token", WithTVURL(tv.URL))
	err := client.Play(context.Background(), "roku-1", "100")
	require.NoError(t, err)
	assert.True(t, played, "playMedia endpoint was not called")
}

func TestClient_Play_UnknownDevice(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("server should not be called, got %s", r.URL.Path)
	})
	tv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Living Room","clientIdentifier":"roku-1"}]`))
	})

	client := NewClient(server.URL, "test-token", WithTVURL(tv.URL))
	err := client.Play(context.Background(), "nope", "100")
	assert.ErrorIs(t, err, ErrNotFound)
}
