package curation

import "fmt"

// ValidationError reports malformed input that the pipeline refuses to
// process. Degraded inputs (missing descriptors, empty candidate sets,
// oversized counts) are handled silently and never produce this error.
type ValidationError struct {
	Field  string // which input field was malformed
	Index  int    // candidate index, or -1 when not track-related
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid candidate %d: %s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// validateCandidates checks the input contract for candidate tracks:
// every track must carry an ID, a name, and at least one artist.
func validateCandidates(candidates []Track) error {
	for i, t := range candidates {
		switch {
		case t.ID == "":
			return &ValidationError{Field: "id", Index: i, Reason: "must not be empty"}
		case t.Name == "":
			return &ValidationError{Field: "name", Index: i, Reason: "must not be empty"}
		case len(t.Artists) == 0:
			return &ValidationError{Field: "artists", Index: i, Reason: "at least one artist is required"}
		}
	}
	return nil
}

// validateMood checks the mood target contract. The primary mood must be
// present; unknown mood words are valid (they fall back to the neutral
// profile) and level fields are clamped rather than rejected.
func validateMood(mood MoodTarget) error {
	if mood.Mood() == "" {
		return &ValidationError{Field: "primary_mood", Index: -1, Reason: "must not be empty"}
	}
	return nil
}
