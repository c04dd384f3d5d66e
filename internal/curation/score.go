package curation

import (
	"math"
	"sort"
	"strings"
)

// moodProfile is the target audio profile for a primary mood.
type moodProfile struct {
	energy  float64
	valence float64
	tempo   float64
}

// neutralProfile is the fallback for unrecognized moods.
var neutralProfile = moodProfile{energy: 0.5, valence: 0.5, tempo: 100}

// moodProfiles maps each recognized mood to its target audio profile.
var moodProfiles = map[Mood]moodProfile{
	MoodHappy:      {energy: 0.7, valence: 0.8, tempo: 120},
	MoodExcited:    {energy: 0.9, valence: 0.8, tempo: 130},
	MoodEnergetic:  {energy: 0.9, valence: 0.7, tempo: 130},
	MoodCalm:       {energy: 0.3, valence: 0.5, tempo: 80},
	MoodRelaxed:    {energy: 0.3, valence: 0.6, tempo: 75},
	MoodFocused:    {energy: 0.5, valence: 0.5, tempo: 100},
	MoodSad:        {energy: 0.3, valence: 0.2, tempo: 70},
	MoodMelancholy: {energy: 0.3, valence: 0.3, tempo: 75},
	MoodAngry:      {energy: 0.9, valence: 0.3, tempo: 140},
	MoodNeutral:    {energy: 0.5, valence: 0.5, tempo: 100},
}

// profileFor returns the target audio profile for a mood, falling back to
// the neutral profile for anything outside the vocabulary.
func profileFor(m Mood) moodProfile {
	if p, ok := moodProfiles[m]; ok {
		return p
	}
	return neutralProfile
}

// tempoNorm normalizes tempo distances so a 200 BPM gap counts as a full miss.
const tempoNorm = 200.0

// ScoreTracks scores every candidate against the mood target and optional
// preferences, returning the tracks sorted by descending relevance. Missing
// descriptors use neutral defaults; unknown moods use the neutral profile.
// The sort is stable, so ties keep the candidate order.
func ScoreTracks(candidates []Track, mood MoodTarget, prefs *Preferences, w RelevanceWeights) []ScoredTrack {
	scored := make([]ScoredTrack, len(candidates))

	for i := range candidates {
		t := &candidates[i]
		breakdown := ScoreBreakdown{
			AudioMatch: audioMatchScore(t, mood.Mood()),
			Preference: preferenceScore(t, prefs),
			Popularity: popularityScore(t),
			Novelty:    noveltyScore(t, prefs),
		}

		total := breakdown.AudioMatch*w.AudioMatch +
			breakdown.Preference*w.Preference +
			breakdown.Popularity*w.Popularity +
			breakdown.Novelty*w.Novelty

		scored[i] = ScoredTrack{
			Track:          candidates[i],
			RelevanceScore: clampScore(total),
			Breakdown:      breakdown,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	return scored
}

// audioMatchScore measures how closely the track's audio descriptors match
// the mood's target profile. Per-feature absolute distances become
// similarities via (1-distance)*100, averaged over energy, valence, and
// tempo (tempo distance normalized by tempoNorm and capped at 1).
func audioMatchScore(t *Track, mood Mood) float64 {
	target := profileFor(mood)

	energyDist := math.Abs(t.EnergyValue() - target.energy)
	valenceDist := math.Abs(t.ValenceValue() - target.valence)
	tempoDist := math.Min(math.Abs(t.TempoValue()-target.tempo)/tempoNorm, 1)

	energyScore := (1 - energyDist) * 100
	valenceScore := (1 - valenceDist) * 100
	tempoScore := (1 - tempoDist) * 100

	return clampScore((energyScore + valenceScore + tempoScore) / 3)
}

// preferenceScore starts from a neutral base and rewards matches against the
// listener's favorite artists and genres. Matching is case-insensitive and
// each bonus applies at most once.
func preferenceScore(t *Track, prefs *Preferences) float64 {
	score := 50.0
	if prefs == nil {
		return score
	}

	if anyMatchFold(t.Artists, prefs.FavoriteArtists) {
		score += 30
	}
	if anyMatchFold(t.Genres, prefs.FavoriteGenres) {
		score += 20
	}

	return clampScore(score)
}

// popularityScore rewards a 60-80 popularity sweet spot, avoiding maximally
// mainstream tracks without burying obscure ones.
func popularityScore(t *Track) float64 {
	pop := t.PopularityValue()
	switch {
	case pop >= 60 && pop <= 80:
		return 100
	case pop > 80:
		return 90
	case pop < 40:
		return 70
	default:
		return 85
	}
}

// noveltyScore rewards tracks whose artists the listener has not heard
// recently, encouraging discovery.
func noveltyScore(t *Track, prefs *Preferences) float64 {
	score := 70.0
	if prefs == nil || len(prefs.RecentArtists) == 0 {
		return score
	}

	if !anyMatchFold(t.Artists, prefs.RecentArtists) {
		score += 30
	}

	return clampScore(score)
}

// anyMatchFold reports whether any value appears in the candidate set,
// compared case-insensitively.
func anyMatchFold(values, set []string) bool {
	for _, v := range values {
		for _, s := range set {
			if strings.EqualFold(v, s) {
				return true
			}
		}
	}
	return false
}

// clampScore clamps a score to the 0-100 range.
func clampScore(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}
