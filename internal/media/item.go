// Package media turns raw Plex items into a stable, type-discriminated
// projection for tool output.
package media

import "strings"

// Kind is the discriminant of an Item.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindShow    Kind = "show"
	KindSeason  Kind = "season"
	KindEpisode Kind = "episode"
)

// ParseKind lowercases s into a Kind. Unknown values are returned as-is and
// normalize to *Other.
func ParseKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s)))
}

// Item is one of *Movie, *Show, *Season, *Episode or *Other.
type Item interface {
	Kind() Kind
	item()
}

// Base carries the fields every item has.
type Base struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
	Type  Kind   `json:"type"`
}

// Kind returns the item's discriminant.
func (b Base) Kind() Kind { return b.Type }

func (Base) item() {}

// Movie is a film.
type Movie struct {
	Base
	Duration int         `json:"duration"`
	Rating   float64     `json:"rating"`
	Summary  string      `json:"summary"`
	Media    []MediaInfo `json:"media"`
}

// Show is a TV series.
type Show struct {
	Base
	SeasonCount  int    `json:"seasonCount"`
	EpisodeCount int    `json:"episodeCount"`
	Summary      string `json:"summary"`
}

// Season is a season of a show.
type Season struct {
	Base
	Index        int    `json:"index"`
	EpisodeCount int    `json:"episodeCount"`
	ShowTitle    string `json:"showTitle,omitempty"`
}

// Episode is a single episode.
type Episode struct {
	Base
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`
	Duration      int    `json:"duration"`
	Summary       string `json:"summary"`
	ShowTitle     string `json:"showTitle,omitempty"`
}

// Other holds upstream kinds with no dedicated projection (artists, tracks,
// collections).
type Other struct {
	Base
}

// MediaInfo is the technical profile of one version of an item.
type MediaInfo struct {
	ID                    int    `json:"id"`
	Duration              int    `json:"duration,omitempty"`
	Bitrate               int    `json:"bitrate,omitempty"`
	Width                 int    `json:"width,omitempty"`
	Height                int    `json:"height,omitempty"`
	VideoCodec            string `json:"videoCodec,omitempty"`
	AudioCodec            string `json:"audioCodec,omitempty"`
	VideoResolution       string `json:"videoResolution,omitempty"`
	Container             string `json:"container,omitempty"`
	OptimizedForStreaming bool   `json:"optimizedForStreaming"`
}

// Library is a library section.
type Library struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Device is a player or server registered to the account.
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Product       string `json:"product"`
	Platform      string `json:"platform"`
	Version       string `json:"version"`
	Owned         bool   `json:"owned"`
	LastSeen      string `json:"lastSeen,omitempty"`
	PublicAddress string `json:"publicAddress,omitempty"`
}
