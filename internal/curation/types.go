// Package curation implements the mood playlist curation pipeline:
// relevance scoring, diversity-constrained selection, energy sequencing,
// diversity metrics, and templated explanations.
package curation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Neutral defaults substituted for absent audio descriptors.
const (
	DefaultUnitFeature = 0.5
	DefaultTempo       = 100.0
	DefaultPopularity  = 50
)

// Track represents a candidate track with its metadata and audio descriptors.
// Descriptor fields are nil when the catalog did not supply them; the
// pipeline substitutes neutral defaults instead of failing. Tracks are
// read-only within the pipeline.
type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []string `json:"artists"`
	Genres  []string `json:"genres,omitempty"`

	// Audio descriptors (nil if not available)
	Energy       *float64 `json:"energy,omitempty"`       // 0-1
	Valence      *float64 `json:"valence,omitempty"`      // 0-1
	Danceability *float64 `json:"danceability,omitempty"` // 0-1
	Tempo        *float64 `json:"tempo,omitempty"`        // BPM
	Popularity   *int     `json:"popularity,omitempty"`   // 0-100

	Explicit   bool `json:"explicit,omitempty"`
	DurationMS int  `json:"duration_ms,omitempty"`
}

// LeadArtist returns the first artist name, or "" when none is present.
func (t *Track) LeadArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0]
}

// EnergyValue returns the track energy, or the neutral default when absent.
func (t *Track) EnergyValue() float64 {
	if t.Energy == nil {
		return DefaultUnitFeature
	}
	return *t.Energy
}

// ValenceValue returns the track valence, or the neutral default when absent.
func (t *Track) ValenceValue() float64 {
	if t.Valence == nil {
		return DefaultUnitFeature
	}
	return *t.Valence
}

// DanceabilityValue returns the track danceability, or the neutral default when absent.
func (t *Track) DanceabilityValue() float64 {
	if t.Danceability == nil {
		return DefaultUnitFeature
	}
	return *t.Danceability
}

// TempoValue returns the track tempo in BPM, or the neutral default when absent.
func (t *Track) TempoValue() float64 {
	if t.Tempo == nil {
		return DefaultTempo
	}
	return *t.Tempo
}

// PopularityValue returns the track popularity, or the neutral default when absent.
func (t *Track) PopularityValue() int {
	if t.Popularity == nil {
		return DefaultPopularity
	}
	return *t.Popularity
}

// Mood is a primary mood from the fixed vocabulary. Unrecognized values fall
// back to the neutral audio profile and the default explanation template.
type Mood string

// Recognized moods.
const (
	MoodHappy      Mood = "happy"
	MoodExcited    Mood = "excited"
	MoodEnergetic  Mood = "energetic"
	MoodCalm       Mood = "calm"
	MoodRelaxed    Mood = "relaxed"
	MoodFocused    Mood = "focused"
	MoodSad        Mood = "sad"
	MoodMelancholy Mood = "melancholy"
	MoodAngry      Mood = "angry"
	MoodNeutral    Mood = "neutral"
)

// Vocabulary lists every recognized mood, neutral fallback included.
func Vocabulary() []Mood {
	return []Mood{
		MoodHappy, MoodExcited, MoodEnergetic,
		MoodCalm, MoodRelaxed, MoodFocused,
		MoodSad, MoodMelancholy, MoodAngry,
		MoodNeutral,
	}
}

// MoodTarget is the structured emotional state a playlist must satisfy.
// It is produced upstream (mood extraction is not part of this module)
// and treated as immutable here.
type MoodTarget struct {
	PrimaryMood        string   `json:"primary_mood"`
	EnergyLevel        int      `json:"energy_level"`        // 1-10
	EmotionalIntensity int      `json:"emotional_intensity"` // 1-10
	MoodTags           []string `json:"mood_tags,omitempty"`
}

// Mood returns the normalized primary mood.
func (m MoodTarget) Mood() Mood {
	return Mood(strings.ToLower(strings.TrimSpace(m.PrimaryMood)))
}

// Describe returns a natural language summary of the mood target, e.g.
// "energetic (strong) with very high energy. Additional descriptors: motivated, active".
func (m MoodTarget) Describe() string {
	var energyDesc string
	switch {
	case m.EnergyLevel >= 8:
		energyDesc = "very high energy"
	case m.EnergyLevel >= 6:
		energyDesc = "good energy"
	case m.EnergyLevel >= 4:
		energyDesc = "moderate energy"
	default:
		energyDesc = "low energy"
	}

	var intensityDesc string
	switch {
	case m.EmotionalIntensity >= 8:
		intensityDesc = "very intense"
	case m.EmotionalIntensity >= 6:
		intensityDesc = "strong"
	case m.EmotionalIntensity >= 4:
		intensityDesc = "moderate"
	default:
		intensityDesc = "mild"
	}

	desc := fmt.Sprintf("%s (%s) with %s", m.Mood(), intensityDesc, energyDesc)

	if len(m.MoodTags) > 0 {
		n := min(3, len(m.MoodTags))
		desc += ". Additional descriptors: " + strings.Join(m.MoodTags[:n], ", ")
	}

	return desc
}

// Preferences captures optional listener context used to bias scoring.
// A nil *Preferences is valid and yields the neutral base scores.
type Preferences struct {
	FavoriteArtists []string `json:"favorite_artists,omitempty"`
	FavoriteGenres  []string `json:"favorite_genres,omitempty"`
	RecentArtists   []string `json:"recent_artists,omitempty"`
}

// ScoreBreakdown holds the four weighted relevance components, each 0-100.
type ScoreBreakdown struct {
	AudioMatch float64 `json:"audio_match"`
	Preference float64 `json:"user_preference"`
	Popularity float64 `json:"popularity"`
	Novelty    float64 `json:"novelty"`
}

// ScoredTrack is a track annotated with its relevance score and breakdown.
type ScoredTrack struct {
	Track
	RelevanceScore float64        `json:"relevance_score"` // 0-100
	Breakdown      ScoreBreakdown `json:"score_breakdown"`
}

// DiversityMetrics aggregates statistics over a finished playlist.
// Standard deviations are population standard deviations.
type DiversityMetrics struct {
	UniqueArtists  int     `json:"unique_artists"`
	TempoMean      float64 `json:"tempo_mean"`
	TempoStd       float64 `json:"tempo_std"`
	EnergyMean     float64 `json:"energy_mean"`
	EnergyStd      float64 `json:"energy_std"`
	DiversityScore float64 `json:"diversity_score"` // 0-100
}

// Characteristics are the derived qualitative attributes of a playlist used
// to render its explanation.
type Characteristics struct {
	AvgEnergy     float64  `json:"avg_energy"`
	AvgTempo      float64  `json:"avg_tempo"`
	AvgValence    float64  `json:"avg_valence"`
	EnergyDesc    string   `json:"energy_desc"`
	TempoDesc     string   `json:"tempo_desc"`
	MoodDesc      string   `json:"mood_desc"`
	UniqueArtists int      `json:"unique_artists"`
	TopArtists    []string `json:"top_artists,omitempty"`
	TrackCount    int      `json:"track_count"`
}

// Playlist is the terminal artifact of the pipeline: an ordered track list
// with its diversity metrics, derived characteristics, and explanation.
type Playlist struct {
	ID              uuid.UUID        `json:"id"`
	Mood            MoodTarget       `json:"mood"`
	Tracks          []ScoredTrack    `json:"tracks"`
	Metrics         DiversityMetrics `json:"diversity_metrics"`
	Characteristics Characteristics  `json:"characteristics"`
	Explanation     string           `json:"explanation"`
}
