package tools_test

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/plexmcp/internal/mock"
)

func mockSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	client, err := mock.New(testLogger())
	require.NoError(t, err)
	return connect(t, client)
}

func ids(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.(map[string]any)["id"].(string))
	}
	return out
}

func TestMock_ListLibraryContents_Movies(t *testing.T) {
	session := mockSession(t)

	libs := envelope(t, callTool(t, session, "list-libraries", nil))["libraries"].([]any)
	require.NotEmpty(t, libs)
	assert.Equal(t, map[string]any{"id": "1", "title": "Movies", "type": "movie"}, libs[0])

	out := envelope(t, callTool(t, session, "list-library-contents", map[string]any{"libraryId": "1"}))
	items := out["media"].([]any)
	require.NotEmpty(t, items)
	for _, it := range items {
		m := it.(map[string]any)
		assert.NotEmpty(t, m["id"])
		assert.NotEmpty(t, m["title"])
		assert.Equal(t, "movie", m["type"])
		assert.Contains(t, m, "duration")
		assert.Contains(t, m, "rating")
		assert.Contains(t, m, "summary")
	}
}

func TestMock_ListLibraryContents_PageSize(t *testing.T) {
	session := mockSession(t)

	out := envelope(t, callTool(t, session, "list-library-contents", map[string]any{"libraryId": "1", "size": 2}))
	assert.Len(t, out["media"], 2)
	assert.Equal(t, float64(5), out["totalSize"])
}

func TestMock_ListLibraryContents_UnknownLibrary(t *testing.T) {
	res := callTool(t, mockSession(t), "list-library-contents", map[string]any{"libraryId": "99"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "404")
}

func TestMock_ListMovies(t *testing.T) {
	out := envelope(t, callTool(t, mockSession(t), "list-movies", nil))
	assert.Equal(t, float64(5), out["totalSize"])
	assert.Equal(t, []string{"101", "102", "103", "104", "105"}, ids(out["movies"].([]any)))
}

func TestMock_ShowHierarchy(t *testing.T) {
	session := mockSession(t)

	seasons := envelope(t, callTool(t, session, "list-seasons", map[string]any{"showId": "200"}))["seasons"].([]any)
	assert.Equal(t, []string{"201", "202"}, ids(seasons))

	episodes := envelope(t, callTool(t, session, "list-episodes", map[string]any{"seasonId": "201"}))["episodes"].([]any)
	require.Len(t, episodes, 3)
	first := episodes[0].(map[string]any)
	assert.Equal(t, "episode", first["type"])
	assert.Equal(t, "Dark", first["showTitle"])
	assert.Equal(t, float64(1), first["episodeNumber"])
}

func TestMock_SearchIgnoresAccents(t *testing.T) {
	out := envelope(t, callTool(t, mockSession(t), "search", map[string]any{"query": "amelie"}))
	assert.Equal(t, []string{"103"}, ids(out["results"].([]any)))
}

func TestMock_WatchlistAvailableIsSubset(t *testing.T) {
	session := mockSession(t)

	all := ids(envelope(t, callTool(t, session, "list-watchlist", map[string]any{"filter": "all"}))["watchlist"].([]any))
	available := ids(envelope(t, callTool(t, session, "list-watchlist", map[string]any{"filter": "available"}))["watchlist"].([]any))

	assert.Subset(t, all, available)
	assert.Less(t, len(available), len(all))
}

func TestMock_DevicesAndPlayback(t *testing.T) {
	session := mockSession(t)

	devices := envelope(t, callTool(t, session, "list-devices", nil))["devices"].([]any)
	assert.Contains(t, ids(devices), "mock-roku-001")

	envelope(t, callTool(t, session, "play-media", map[string]any{"clientId": "mock-roku-001", "mediaId": "101"}))

	res := callTool(t, session, "play-media", map[string]any{"clientId": "mock-roku-01", "mediaId": "101"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "did you mean")

	res = callTool(t, session, "play-media", map[string]any{"clientId": "mock-roku-001", "mediaId": "999"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not found")
}
