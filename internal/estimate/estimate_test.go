package estimate

import (
	"testing"

	"github.com/moodcue/go-mood-curator/internal/curation"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestEstimateDeterministic(t *testing.T) {
	track := curation.Track{
		ID:         "4uLU6hMCjMI75M1A2tKUQC",
		Name:       "Midnight Drive",
		Artists:    []string{"Nightrunner"},
		Popularity: intp(64),
		DurationMS: 214000,
	}

	first := Estimate(&track)
	second := Estimate(&track)

	if first != second {
		t.Errorf("estimates differ across calls: %+v vs %+v", first, second)
	}
}

func TestEstimateDiffersByID(t *testing.T) {
	a := curation.Track{ID: "track-a", Name: "Same Name", Artists: []string{"Same Artist"}}
	b := curation.Track{ID: "track-b", Name: "Same Name", Artists: []string{"Same Artist"}}

	if Estimate(&a) == Estimate(&b) {
		t.Error("tracks with different IDs produced identical estimates")
	}
}

func TestEstimateBounds(t *testing.T) {
	tests := []struct {
		name  string
		track curation.Track
	}{
		{
			name: "maximal positive signals",
			track: curation.Track{
				ID: "1", Name: "Crazy Party Fire Dance", Artists: []string{"Hype Beast"},
				Popularity: intp(100), DurationMS: 90000, Explicit: true,
			},
		},
		{
			name: "maximal negative signals",
			track: curation.Track{
				ID: "2", Name: "Lonely Tears in the Dark", Artists: []string{"Quiet Sleep"},
				Popularity: intp(0), DurationMS: 480000,
			},
		},
		{
			name:  "no metadata at all",
			track: curation.Track{ID: "3", Name: "Untitled", Artists: []string{"Unknown"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(&tt.track)
			for name, v := range map[string]float64{
				"energy":       got.Energy,
				"valence":      got.Valence,
				"danceability": got.Danceability,
			} {
				if v < 0 || v > 1 {
					t.Errorf("%s = %v, out of [0,1]", name, v)
				}
			}
			if got.Tempo < 60 || got.Tempo > 200 {
				t.Errorf("tempo = %v, out of [60,200]", got.Tempo)
			}
		})
	}
}

func TestEstimateKeywordDirection(t *testing.T) {
	calm := curation.Track{ID: "same-seed", Name: "Peaceful Ambient Sleep", Artists: []string{"X"}}
	hype := curation.Track{ID: "same-seed", Name: "Party Rage Fire", Artists: []string{"X"}}

	// Identical IDs give identical seeds, so the keyword adjustments are the
	// only difference.
	calmEst := Estimate(&calm)
	hypeEst := Estimate(&hype)

	if calmEst.Energy >= hypeEst.Energy {
		t.Errorf("calm keywords energy %v not below hype keywords energy %v",
			calmEst.Energy, hypeEst.Energy)
	}
	if calmEst.Tempo >= hypeEst.Tempo {
		t.Errorf("calm keywords tempo %v not below hype keywords tempo %v",
			calmEst.Tempo, hypeEst.Tempo)
	}
}

func TestFillMissingPreservesSuppliedValues(t *testing.T) {
	tracks := []curation.Track{
		{
			ID: "1", Name: "Fully Described", Artists: []string{"A"},
			Energy: f64(0.9), Valence: f64(0.8), Danceability: f64(0.7), Tempo: f64(128),
		},
		{
			ID: "2", Name: "Half Described", Artists: []string{"B"},
			Energy: f64(0.4),
		},
		{
			ID: "3", Name: "Bare", Artists: []string{"C"},
		},
	}

	got := FillMissing(tracks)

	if len(got) != 3 {
		t.Fatalf("got %d tracks, want 3", len(got))
	}
	if *got[0].Energy != 0.9 || *got[0].Tempo != 128 {
		t.Errorf("supplied descriptors were overwritten: %+v", got[0])
	}
	if *got[1].Energy != 0.4 {
		t.Errorf("supplied energy overwritten on half-described track: %v", *got[1].Energy)
	}
	for i, tr := range got {
		if tr.Energy == nil || tr.Valence == nil || tr.Danceability == nil || tr.Tempo == nil {
			t.Errorf("track %d still has a nil descriptor after filling", i)
		}
	}
}

func TestFillMissingDoesNotMutateInput(t *testing.T) {
	tracks := []curation.Track{{ID: "1", Name: "Bare", Artists: []string{"A"}}}

	FillMissing(tracks)

	if tracks[0].Energy != nil || tracks[0].Tempo != nil {
		t.Error("FillMissing mutated its input slice")
	}
}
