package explore

// GroupName creates a descriptive name from a group's centroid descriptors.
// Uses a 2x2 energy/valence quadrant system with a danceability modifier.
//
// Quadrants:
//   - High Energy + High Valence = "Upbeat Party"
//   - High Energy + Low Valence  = "Intense & Dark"
//   - Low Energy  + High Valence = "Chill & Happy"
//   - Low Energy  + Low Valence  = "Reflective & Melancholy"
//
// Danceability modifier: if > 0.7, appends "Danceable" to the name.
func GroupName(centroid map[string]float64) string {
	energy := centroid["energy"]
	valence := centroid["valence"]
	danceability := centroid["danceability"]

	var baseName string

	highEnergy := energy > 0.6
	highValence := valence > 0.5

	switch {
	case highEnergy && highValence:
		baseName = "Upbeat Party"
	case highEnergy && !highValence:
		baseName = "Intense & Dark"
	case !highEnergy && highValence:
		baseName = "Chill & Happy"
	default: // low energy, low valence
		baseName = "Reflective & Melancholy"
	}

	if danceability > 0.7 {
		return baseName + " (Danceable)"
	}

	return baseName
}

// MoodSummary describes a group's mood for display purposes.
type MoodSummary struct {
	Name        string  // display name
	Energy      float64 // average energy level
	Valence     float64 // average positivity
	Description string  // brief description of the mood
}

// Summarize returns a detailed mood summary for a centroid.
func Summarize(centroid map[string]float64) MoodSummary {
	energy := centroid["energy"]
	valence := centroid["valence"]

	var description string
	switch {
	case energy > 0.6 && valence > 0.5:
		description = "High-energy, positive vibes - perfect for dancing and celebrations"
	case energy > 0.6 && valence <= 0.5:
		description = "Intense, driving energy with darker emotional tones"
	case energy <= 0.6 && valence > 0.5:
		description = "Relaxed and uplifting - great for unwinding"
	default:
		description = "Contemplative and introspective - ideal for quiet moments"
	}

	return MoodSummary{
		Name:        GroupName(centroid),
		Energy:      energy,
		Valence:     valence,
		Description: description,
	}
}
