// Package explore groups a candidate library into named mood groups using
// k-means over audio descriptors. It is a library-exploration aid, separate
// from the curation pipeline: k-means seeding is randomized, and the
// pipeline itself must stay deterministic.
package explore

import (
	"fmt"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/moodcue/go-mood-curator/internal/curation"
)

// Config holds mood grouping parameters.
type Config struct {
	NumGroups    int // number of groups to create (default: 3)
	MinGroupSize int // smaller groups become outliers (default: 3)
}

// DefaultConfig returns the recommended default configuration.
func DefaultConfig() Config {
	return Config{
		NumGroups:    3,
		MinGroupSize: 3,
	}
}

// Group is a set of tracks with similar audio descriptors.
type Group struct {
	Name     string             // descriptive name, e.g. "Upbeat Party"
	Tracks   []curation.Track   // tracks in this group
	Centroid map[string]float64 // average descriptor values for the group
}

// trackObservation wraps a track to implement clusters.Observation.
type trackObservation struct {
	track  *curation.Track
	coords clusters.Coordinates
}

func (o trackObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o trackObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// featureNames defines the descriptors used for grouping, in vector order.
var featureNames = []string{"energy", "valence", "danceability", "tempo"}

// maxTempo scales tempo into the unit range so it doesn't dominate distances.
const maxTempo = 250.0

// GroupByMood clusters tracks by audio descriptor similarity. Returns the
// detected groups and the outlier tracks that didn't fit any group. Tracks
// missing any of the grouping descriptors are treated as outliers.
func GroupByMood(tracks []curation.Track, cfg Config) ([]Group, []curation.Track) {
	if len(tracks) == 0 {
		return nil, nil
	}

	if cfg.NumGroups <= 0 {
		cfg.NumGroups = DefaultConfig().NumGroups
	}

	// Separate tracks with and without descriptors.
	var valid []*curation.Track
	var missing []curation.Track
	for i := range tracks {
		t := &tracks[i]
		if hasDescriptors(t) {
			valid = append(valid, t)
		} else {
			missing = append(missing, *t)
		}
	}

	// Fewer usable tracks than groups: everything is an outlier.
	if len(valid) < cfg.NumGroups {
		var outliers []curation.Track
		for _, t := range valid {
			outliers = append(outliers, *t)
		}
		return nil, append(outliers, missing...)
	}

	var obs clusters.Observations
	for _, t := range valid {
		obs = append(obs, trackObservation{track: t, coords: descriptorVector(t)})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumGroups)
	if err != nil {
		fmt.Printf("Warning: k-means grouping failed: %v\n", err)
		var outliers []curation.Track
		for _, t := range valid {
			outliers = append(outliers, *t)
		}
		return nil, append(outliers, missing...)
	}

	var groups []Group
	var outliers []curation.Track

	for _, cluster := range result {
		var groupTracks []curation.Track
		for _, o := range cluster.Observations {
			if to, ok := o.(trackObservation); ok {
				groupTracks = append(groupTracks, *to.track)
			}
		}

		if len(groupTracks) < cfg.MinGroupSize {
			outliers = append(outliers, groupTracks...)
			continue
		}

		// Stable track order within a group.
		slices.SortFunc(groupTracks, func(a, b curation.Track) int {
			if a.Name != b.Name {
				if a.Name < b.Name {
					return -1
				}
				return 1
			}
			if a.ID < b.ID {
				return -1
			}
			if a.ID > b.ID {
				return 1
			}
			return 0
		})

		centroid := make(map[string]float64, len(featureNames))
		for i, name := range featureNames {
			v := cluster.Center[i]
			if name == "tempo" {
				v *= maxTempo
			}
			centroid[name] = v
		}

		groups = append(groups, Group{
			Name:     GroupName(centroid),
			Tracks:   groupTracks,
			Centroid: centroid,
		})
	}

	outliers = append(outliers, missing...)

	// Largest groups first; names break size ties.
	slices.SortFunc(groups, func(a, b Group) int {
		if len(a.Tracks) != len(b.Tracks) {
			return len(b.Tracks) - len(a.Tracks)
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	return groups, outliers
}

// hasDescriptors checks that a track has every descriptor used for grouping.
func hasDescriptors(t *curation.Track) bool {
	return t.Energy != nil &&
		t.Valence != nil &&
		t.Danceability != nil &&
		t.Tempo != nil
}

// descriptorVector extracts the grouping descriptors as a coordinate vector,
// with tempo scaled into the unit range.
func descriptorVector(t *curation.Track) clusters.Coordinates {
	return clusters.Coordinates{
		*t.Energy,
		*t.Valence,
		*t.Danceability,
		*t.Tempo / maxTempo,
	}
}
