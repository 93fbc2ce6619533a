// Package plex provides a client for the Plex Media Server and plex.tv APIs.
package plex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// envelope is the outer JSON object every Plex server response is wrapped in.
type envelope struct {
	MediaContainer MediaContainer `json:"MediaContainer"`
}

// MediaContainer wraps a list of items plus paging and identity metadata.
type MediaContainer struct {
	Size              int         `json:"size"`
	TotalSize         int         `json:"totalSize"`
	Offset            int         `json:"offset"`
	FriendlyName      string      `json:"friendlyName,omitempty"`
	MachineIdentifier string      `json:"machineIdentifier,omitempty"`
	Version           string      `json:"version,omitempty"`
	Directory         []Directory `json:"Directory,omitempty"`
	Metadata          []Metadata  `json:"Metadata,omitempty"`
}

// Directory represents a Plex library section.
type Directory struct {
	Key       string     `json:"key"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Agent     string     `json:"agent,omitempty"`
	Scanner   string     `json:"scanner,omitempty"`
	UpdatedAt int64      `json:"updatedAt,omitempty"`
	ScannedAt int64      `json:"scannedAt,omitempty"`
	Location  []Location `json:"Location,omitempty"`
}

// Location represents a library section's filesystem location.
type Location struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// Metadata is a single catalog item as Plex returns it. The populated fields
// depend on Type: movies carry Duration and Rating, shows carry ChildCount
// and LeafCount, episodes carry Index and ParentIndex.
type Metadata struct {
	RatingKey        string  `json:"ratingKey"`
	Key              string  `json:"key,omitempty"`
	Type             string  `json:"type"`
	Title            string  `json:"title"`
	Year             int     `json:"year,omitempty"`
	Summary          string  `json:"summary,omitempty"`
	Duration         int     `json:"duration,omitempty"` // milliseconds
	Rating           float64 `json:"rating,omitempty"`
	AudienceRating   float64 `json:"audienceRating,omitempty"`
	ContentRating    string  `json:"contentRating,omitempty"`
	Index            int     `json:"index,omitempty"`
	ParentIndex      int     `json:"parentIndex,omitempty"`
	ParentRatingKey  string  `json:"parentRatingKey,omitempty"`
	ParentTitle      string  `json:"parentTitle,omitempty"`
	GrandparentTitle string  `json:"grandparentTitle,omitempty"`
	ChildCount       int     `json:"childCount,omitempty"`
	LeafCount        int     `json:"leafCount,omitempty"`
	ViewedLeafCount  int     `json:"viewedLeafCount,omitempty"`
	AddedAt          int64   `json:"addedAt,omitempty"`
	Thumb            string  `json:"thumb,omitempty"`
	Media            []Media `json:"Media,omitempty"`
}

// Media describes one technical version of an item (file, codecs, resolution).
type Media struct {
	ID                    int       `json:"id"`
	Duration              int       `json:"duration,omitempty"`
	Bitrate               int       `json:"bitrate,omitempty"`
	Width                 int       `json:"width,omitempty"`
	Height                int       `json:"height,omitempty"`
	AspectRatio           float64   `json:"aspectRatio,omitempty"`
	AudioChannels         int       `json:"audioChannels,omitempty"`
	AudioCodec            string    `json:"audioCodec,omitempty"`
	VideoCodec            string    `json:"videoCodec,omitempty"`
	VideoResolution       string    `json:"videoResolution,omitempty"`
	Container             string    `json:"container,omitempty"`
	VideoFrameRate        string    `json:"videoFrameRate,omitempty"`
	OptimizedForStreaming *FlexBool `json:"optimizedForStreaming,omitempty"`
	Part                  []Part    `json:"Part,omitempty"`
}

// Part is a single file backing a Media entry.
type Part struct {
	ID        int    `json:"id"`
	Key       string `json:"key,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	File      string `json:"file,omitempty"`
	Size      int64  `json:"size,omitempty"`
	Container string `json:"container,omitempty"`
}

// Device is a plex.tv resource: a player, server, or controller registered
// to the account.
type Device struct {
	Name             string `json:"name"`
	Product          string `json:"product"`
	ProductVersion   string `json:"productVersion"`
	Platform         string `json:"platform"`
	PlatformVersion  string `json:"platformVersion"`
	Device           string `json:"device"`
	ClientIdentifier string `json:"clientIdentifier"`
	Owned            bool   `json:"owned"`
	LastSeenAt       string `json:"lastSeenAt"`
	PublicAddress    string `json:"publicAddress"`
	Provides         string `json:"provides"`
}

// Page is one window of a paginated listing.
type Page struct {
	Items     []Metadata
	TotalSize int
}

// Identity holds Plex server identity information.
type Identity struct {
	Name              string
	MachineIdentifier string
	Version           string
}

// FlexBool decodes the boolean flags Plex emits as true/false, 0/1 or "0"/"1".
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	switch string(data) {
	case "true", "1":
		*b = true
		return nil
	case "false", "0", "":
		*b = false
		return nil
	}
	if n, err := strconv.ParseFloat(string(data), 64); err == nil {
		*b = n != 0
		return nil
	}
	return fmt.Errorf("plex: invalid boolean %q", data)
}

// MarshalJSON implements json.Marshaler.
func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Bool returns a pointer to a FlexBool set to v.
func Bool(v bool) *FlexBool {
	b := FlexBool(v)
	return &b
}
