package plex

import "strings"

// Tag selects a view over a library section.
type Tag string

const (
	TagNewest         Tag = "newest"
	TagRecentlyAdded  Tag = "recentlyAdded"
	TagRecentlyViewed Tag = "recentlyViewed"
	TagOnDeck         Tag = "onDeck"
	TagUnwatched      Tag = "unwatched"
	TagCollection     Tag = "collection"
)

// Tags lists every tag the server understands, in display order.
var Tags = []Tag{TagNewest, TagRecentlyAdded, TagRecentlyViewed, TagOnDeck, TagUnwatched, TagCollection}

// ParseTag maps s to a known tag. Unknown or empty values fall back to
// TagNewest.
func ParseTag(s string) Tag {
	for _, t := range Tags {
		if strings.EqualFold(string(t), s) {
			return t
		}
	}
	return TagNewest
}

// Plex content type codes used by the type= query parameter.
const (
	TypeCodeMovie   = 1
	TypeCodeShow    = 2
	TypeCodeSeason  = 3
	TypeCodeEpisode = 4
)

// TypeCode returns the numeric code for a content type name, or 0 when the
// name is empty or unknown (no filter).
func TypeCode(name string) int {
	switch strings.ToLower(name) {
	case "movie":
		return TypeCodeMovie
	case "show":
		return TypeCodeShow
	case "season":
		return TypeCodeSeason
	case "episode":
		return TypeCodeEpisode
	default:
		return 0
	}
}

// WatchlistFilter selects which watchlist entries are returned.
type WatchlistFilter string

const (
	WatchlistAll       WatchlistFilter = "all"
	WatchlistAvailable WatchlistFilter = "available"
)

// ParseWatchlistFilter maps s to a filter; anything but "available" is "all".
func ParseWatchlistFilter(s string) WatchlistFilter {
	if strings.EqualFold(s, string(WatchlistAvailable)) {
		return WatchlistAvailable
	}
	return WatchlistAll
}

// Default page window.
const (
	DefaultStart = 0
	DefaultSize  = 20
)

// ItemsQuery selects a page of items from a library section.
type ItemsQuery struct {
	SectionKey string
	TypeCode   int // 0 for no type filter
	Tag        Tag
	Start      int
	Size       int
}

// WatchlistQuery selects a page of the account watchlist.
type WatchlistQuery struct {
	Filter WatchlistFilter
	Start  int
	Size   int
}

// window normalizes a start/size pair, applying the defaults.
func window(start, size int) (int, int) {
	if start < 0 {
		start = DefaultStart
	}
	if size <= 0 {
		size = DefaultSize
	}
	return start, size
}

// Window returns the effective start and size for the query.
func (q ItemsQuery) Window() (int, int) { return window(q.Start, q.Size) }

// Window returns the effective start and size for the query.
func (q WatchlistQuery) Window() (int, int) { return window(q.Start, q.Size) }
