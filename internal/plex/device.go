package plex

import (
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a device to be
// offered as a "did you mean" hint.
const suggestThreshold = 0.8

// ResolveDevice finds the device with the given client identifier. On a miss
// it returns an error wrapping ErrNotFound, naming the closest device when
// one is similar enough.
func ResolveDevice(devices []Device, clientID string) (*Device, error) {
	for i := range devices {
		if devices[i].ClientIdentifier == clientID {
			return &devices[i], nil
		}
	}

	if best := closestDevice(devices, clientID); best != nil {
		return nil, fmt.Errorf("device %q: %w (did you mean %q, client id %s?)",
			clientID, ErrNotFound, best.Name, best.ClientIdentifier)
	}
	return nil, fmt.Errorf("device %q: %w", clientID, ErrNotFound)
}

// closestDevice compares the query against each device's identifier and
// name, returning the best match above suggestThreshold.
func closestDevice(devices []Device, query string) *Device {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var best *Device
	var bestScore float32
	for i := range devices {
		for _, candidate := range []string{devices[i].ClientIdentifier, devices[i].Name} {
			score := edlib.JaroWinklerSimilarity(q, strings.ToLower(candidate))
			if score > bestScore {
				best = &devices[i]
				bestScore = score
			}
		}
	}
	if bestScore < suggestThreshold {
		return nil
	}
	return best
}
