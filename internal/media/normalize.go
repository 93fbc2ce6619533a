package media

import "github.com/vmunix/plexmcp/internal/plex"

// Normalize converts a raw Plex item into its typed projection. Fields the
// upstream omitted keep their zero value; nothing here fails.
func Normalize(m plex.Metadata) Item {
	base := Base{
		ID:    m.RatingKey,
		Title: m.Title,
		Year:  m.Year,
		Type:  ParseKind(m.Type),
	}

	switch base.Type {
	case KindMovie:
		return &Movie{
			Base:     base,
			Duration: m.Duration,
			Rating:   rating(m),
			Summary:  m.Summary,
			Media:    NormalizeMedia(m.Media),
		}
	case KindShow:
		return &Show{
			Base:         base,
			SeasonCount:  m.ChildCount,
			EpisodeCount: m.LeafCount,
			Summary:      m.Summary,
		}
	case KindSeason:
		return &Season{
			Base:         base,
			Index:        m.Index,
			EpisodeCount: m.LeafCount,
			ShowTitle:    m.ParentTitle,
		}
	case KindEpisode:
		return &Episode{
			Base:          base,
			SeasonNumber:  m.ParentIndex,
			EpisodeNumber: m.Index,
			Duration:      m.Duration,
			Summary:       m.Summary,
			ShowTitle:     m.GrandparentTitle,
		}
	default:
		return &Other{Base: base}
	}
}

// NormalizeAll normalizes a list of items. The result is never nil.
func NormalizeAll(items []plex.Metadata) []Item {
	out := make([]Item, 0, len(items))
	for _, m := range items {
		out = append(out, Normalize(m))
	}
	return out
}

// NormalizeMedia converts media entries, defaulting optimizedForStreaming to
// true when Plex left it out.
func NormalizeMedia(entries []plex.Media) []MediaInfo {
	out := make([]MediaInfo, 0, len(entries))
	for _, e := range entries {
		optimized := true
		if e.OptimizedForStreaming != nil {
			optimized = bool(*e.OptimizedForStreaming)
		}
		out = append(out, MediaInfo{
			ID:                    e.ID,
			Duration:              e.Duration,
			Bitrate:               e.Bitrate,
			Width:                 e.Width,
			Height:                e.Height,
			VideoCodec:            e.VideoCodec,
			AudioCodec:            e.AudioCodec,
			VideoResolution:       e.VideoResolution,
			Container:             e.Container,
			OptimizedForStreaming: optimized,
		})
	}
	return out
}

// NormalizeLibrary converts a library section.
func NormalizeLibrary(d plex.Directory) Library {
	return Library{ID: d.Key, Title: d.Title, Type: d.Type}
}

// NormalizeLibraries converts library sections. The result is never nil.
func NormalizeLibraries(dirs []plex.Directory) []Library {
	out := make([]Library, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, NormalizeLibrary(d))
	}
	return out
}

// NormalizeDevice converts a plex.tv resource.
func NormalizeDevice(d plex.Device) Device {
	version := d.ProductVersion
	if version == "" {
		version = d.PlatformVersion
	}
	return Device{
		ID:            d.ClientIdentifier,
		Name:          d.Name,
		Product:       d.Product,
		Platform:      d.Platform,
		Version:       version,
		Owned:         d.Owned,
		LastSeen:      d.LastSeenAt,
		PublicAddress: d.PublicAddress,
	}
}

// NormalizeDevices converts plex.tv resources. The result is never nil.
func NormalizeDevices(devices []plex.Device) []Device {
	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		out = append(out, NormalizeDevice(d))
	}
	return out
}

// rating prefers the critic rating and falls back to the audience rating.
func rating(m plex.Metadata) float64 {
	if m.Rating != 0 {
		return m.Rating
	}
	return m.AudienceRating
}
