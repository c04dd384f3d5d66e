package explore

import (
	"testing"

	"github.com/moodcue/go-mood-curator/internal/curation"
)

func f64(v float64) *float64 { return &v }

func describedTrack(id, name string, energy, valence, danceability, tempo float64) curation.Track {
	return curation.Track{
		ID:           id,
		Name:         name,
		Artists:      []string{"Artist"},
		Energy:       f64(energy),
		Valence:      f64(valence),
		Danceability: f64(danceability),
		Tempo:        f64(tempo),
	}
}

func TestGroupByMoodEmpty(t *testing.T) {
	groups, outliers := GroupByMood(nil, DefaultConfig())
	if groups != nil || outliers != nil {
		t.Errorf("GroupByMood(empty) = (%v, %v), want (nil, nil)", groups, outliers)
	}
}

func TestGroupByMoodFewerTracksThanGroups(t *testing.T) {
	tracks := []curation.Track{
		describedTrack("1", "One", 0.8, 0.7, 0.6, 120),
		describedTrack("2", "Two", 0.2, 0.3, 0.4, 80),
	}

	groups, outliers := GroupByMood(tracks, DefaultConfig())

	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0", len(groups))
	}
	if len(outliers) != 2 {
		t.Errorf("got %d outliers, want 2", len(outliers))
	}
}

func TestGroupByMoodMissingDescriptorsBecomeOutliers(t *testing.T) {
	tracks := []curation.Track{
		{ID: "bare", Name: "Bare", Artists: []string{"A"}},
		describedTrack("1", "One", 0.8, 0.7, 0.6, 120),
	}

	_, outliers := GroupByMood(tracks, DefaultConfig())

	found := false
	for _, o := range outliers {
		if o.ID == "bare" {
			found = true
		}
	}
	if !found {
		t.Error("track without descriptors was not returned as an outlier")
	}
}

func TestGroupByMoodPartitionsDistinctClusters(t *testing.T) {
	// Two tight clusters far apart in descriptor space, four tracks each.
	var tracks []curation.Track
	for i, id := range []string{"u1", "u2", "u3", "u4"} {
		tracks = append(tracks, describedTrack(id, "Upbeat "+id, 0.85+float64(i)*0.01, 0.8, 0.75, 130))
	}
	for i, id := range []string{"d1", "d2", "d3", "d4"} {
		tracks = append(tracks, describedTrack(id, "Down "+id, 0.15+float64(i)*0.01, 0.2, 0.3, 70))
	}

	groups, outliers := GroupByMood(tracks, Config{NumGroups: 2, MinGroupSize: 3})

	total := len(outliers)
	for _, g := range groups {
		total += len(g.Tracks)
		if g.Name == "" {
			t.Error("group has empty name")
		}
		if len(g.Centroid) != len(featureNames) {
			t.Errorf("group centroid has %d features, want %d", len(g.Centroid), len(featureNames))
		}
	}
	if total != len(tracks) {
		t.Errorf("groups and outliers hold %d tracks, want %d", total, len(tracks))
	}

	// With clusters this separated both should survive the min-size filter,
	// and they must not mix upbeat with downbeat tracks.
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	for _, g := range groups {
		var up, down int
		for _, tr := range g.Tracks {
			if tr.ID[0] == 'u' {
				up++
			} else {
				down++
			}
		}
		if up > 0 && down > 0 {
			t.Errorf("group %q mixes upbeat and downbeat tracks", g.Name)
		}
	}
}

func TestHasDescriptors(t *testing.T) {
	full := describedTrack("1", "One", 0.5, 0.5, 0.5, 100)
	if !hasDescriptors(&full) {
		t.Error("fully described track reported as missing descriptors")
	}

	partial := describedTrack("2", "Two", 0.5, 0.5, 0.5, 100)
	partial.Tempo = nil
	if hasDescriptors(&partial) {
		t.Error("track missing tempo reported as fully described")
	}
}

func TestDescriptorVectorScalesTempo(t *testing.T) {
	tr := describedTrack("1", "One", 0.5, 0.6, 0.7, 125)

	got := descriptorVector(&tr)

	if len(got) != 4 {
		t.Fatalf("vector has %d coordinates, want 4", len(got))
	}
	if got[3] != 125/maxTempo {
		t.Errorf("tempo coordinate = %v, want %v", got[3], 125/maxTempo)
	}
}
