package curation

import "math"

// Measure computes diversity statistics over the final ordering: unique lead
// artists (case-sensitive), tempo and energy mean/std (population), and the
// weighted composite diversity score. An empty playlist yields all zeros.
func Measure(playlist []ScoredTrack, tuning DiversityTuning) DiversityMetrics {
	if len(playlist) == 0 {
		return DiversityMetrics{}
	}

	artists := make(map[string]struct{})
	tempos := make([]float64, len(playlist))
	energies := make([]float64, len(playlist))
	for i := range playlist {
		artists[playlist[i].LeadArtist()] = struct{}{}
		tempos[i] = playlist[i].TempoValue()
		energies[i] = playlist[i].EnergyValue()
	}

	tempoMean, tempoStd := meanStd(tempos)
	energyMean, energyStd := meanStd(energies)

	artistRatio := float64(len(artists)) / float64(len(playlist))
	artistScore := math.Min(100, artistRatio*tuning.ArtistScale)
	tempoScore := math.Min(100, tempoStd*tuning.TempoScale)
	energyScore := math.Min(100, energyStd*tuning.EnergyScale)

	score := artistScore*tuning.ArtistWeight +
		tempoScore*tuning.TempoWeight +
		energyScore*tuning.EnergyWeight

	return DiversityMetrics{
		UniqueArtists:  len(artists),
		TempoMean:      tempoMean,
		TempoStd:       tempoStd,
		EnergyMean:     energyMean,
		EnergyStd:      energyStd,
		DiversityScore: score,
	}
}

// meanStd returns the mean and population standard deviation of values.
func meanStd(values []float64) (mean, std float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
