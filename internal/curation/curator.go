package curation

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Curator runs the five-stage curation pipeline:
// score -> select -> sequence -> measure -> explain.
//
// A Curator holds only tuning constants and a logger; it keeps no
// per-request state, so a single instance is safe for concurrent use
// without synchronization.
type Curator struct {
	tuning Tuning
	logger *slog.Logger
	newID  func() uuid.UUID
}

// Option configures a Curator.
type Option func(*Curator)

// WithIDGenerator overrides playlist ID generation. Useful for tests that
// need fully reproducible output.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(c *Curator) { c.newID = gen }
}

// New creates a Curator with the given tuning. Unset tuning values fall back
// to the recommended defaults. A nil logger disables stage logging.
func New(tuning Tuning, logger *slog.Logger, opts ...Option) *Curator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Curator{
		tuning: tuning.withDefaults(),
		logger: logger,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Curate produces a playlist of up to desiredCount tracks matching the mood
// target. Candidates missing audio descriptors are scored with neutral
// defaults; an empty candidate set yields an empty playlist with zeroed
// metrics rather than an error. Malformed input (missing track identity or
// mood) returns a *ValidationError.
//
// Apart from the generated playlist ID the pipeline is fully deterministic:
// identical inputs produce identical track orderings, metrics, and
// explanations.
func (c *Curator) Curate(candidates []Track, mood MoodTarget, prefs *Preferences, desiredCount int) (*Playlist, error) {
	if err := validateMood(mood); err != nil {
		return nil, err
	}
	if err := validateCandidates(candidates); err != nil {
		return nil, err
	}
	if desiredCount <= 0 {
		return nil, &ValidationError{Field: "desired_count", Index: -1, Reason: fmt.Sprintf("must be positive, got %d", desiredCount)}
	}

	mood = clampMoodLevels(mood)

	if len(candidates) == 0 {
		c.logger.Info("no candidates to curate", "mood", mood.Mood())
		return &Playlist{
			ID:   c.newID(),
			Mood: mood,
			Explanation: fmt.Sprintf(
				"No candidate tracks were available to curate for your %s mood.", mood.Mood()),
		}, nil
	}

	count := min(desiredCount, len(candidates))

	c.logger.Info("curating playlist",
		"candidates", len(candidates),
		"mood", mood.Mood(),
		"desired_count", count)

	ranked := ScoreTracks(candidates, mood, prefs, c.tuning.Relevance)
	c.logger.Debug("ranked candidates",
		"top_score", ranked[0].RelevanceScore,
		"bottom_score", ranked[len(ranked)-1].RelevanceScore)

	selected := SelectDiverse(ranked, count, c.tuning.ArtistCap)
	c.logger.Debug("selected tracks", "count", len(selected), "artist_cap", c.tuning.ArtistCap)

	sequenced := SequenceByEnergy(selected)

	metrics := Measure(sequenced, c.tuning.Diversity)
	characteristics := Characterize(sequenced, metrics)
	explanation := Explain(mood, characteristics)

	c.logger.Info("curation complete",
		"tracks", len(sequenced),
		"unique_artists", metrics.UniqueArtists,
		"diversity_score", metrics.DiversityScore)

	return &Playlist{
		ID:              c.newID(),
		Mood:            mood,
		Tracks:          sequenced,
		Metrics:         metrics,
		Characteristics: characteristics,
		Explanation:     explanation,
	}, nil
}

// clampMoodLevels clamps the 1-10 level fields instead of rejecting
// out-of-range values.
func clampMoodLevels(mood MoodTarget) MoodTarget {
	mood.EnergyLevel = max(1, min(10, mood.EnergyLevel))
	mood.EmotionalIntensity = max(1, min(10, mood.EmotionalIntensity))
	return mood
}
