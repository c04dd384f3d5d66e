package curation

import (
	"fmt"
	"sort"
)

// Descriptor thresholds for playlist averages.
const (
	highEnergyThreshold     = 0.7
	moderateEnergyThreshold = 0.4
	upbeatTempoThreshold    = 120
	midTempoThreshold       = 90
	upliftingValence        = 0.6
	balancedValence         = 0.4
)

// Characterize derives the qualitative attributes of a playlist by
// thresholding its descriptor averages. An empty playlist yields a zero
// Characteristics.
func Characterize(playlist []ScoredTrack, metrics DiversityMetrics) Characteristics {
	if len(playlist) == 0 {
		return Characteristics{}
	}

	var energySum, tempoSum, valenceSum float64
	artistCounts := make(map[string]int)
	for i := range playlist {
		energySum += playlist[i].EnergyValue()
		tempoSum += playlist[i].TempoValue()
		valenceSum += playlist[i].ValenceValue()
		artistCounts[playlist[i].LeadArtist()]++
	}

	n := float64(len(playlist))
	avgEnergy := energySum / n
	avgTempo := tempoSum / n
	avgValence := valenceSum / n

	var energyDesc string
	switch {
	case avgEnergy > highEnergyThreshold:
		energyDesc = "high-energy"
	case avgEnergy > moderateEnergyThreshold:
		energyDesc = "moderate-energy"
	default:
		energyDesc = "low-energy"
	}

	var tempoDesc string
	switch {
	case avgTempo > upbeatTempoThreshold:
		tempoDesc = "upbeat"
	case avgTempo > midTempoThreshold:
		tempoDesc = "mid-tempo"
	default:
		tempoDesc = "slow-paced"
	}

	var moodDesc string
	switch {
	case avgValence > upliftingValence:
		moodDesc = "positive and uplifting"
	case avgValence > balancedValence:
		moodDesc = "balanced"
	default:
		moodDesc = "emotional and reflective"
	}

	return Characteristics{
		AvgEnergy:     avgEnergy,
		AvgTempo:      avgTempo,
		AvgValence:    avgValence,
		EnergyDesc:    energyDesc,
		TempoDesc:     tempoDesc,
		MoodDesc:      moodDesc,
		UniqueArtists: metrics.UniqueArtists,
		TopArtists:    topArtists(artistCounts, 3),
		TrackCount:    len(playlist),
	}
}

// topArtists returns the n most frequent artists. Count ties break on name
// so the result is deterministic.
func topArtists(counts map[string]int, n int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// Explain renders a short deterministic rationale for the playlist from its
// derived characteristics. Every vocabulary mood has a bespoke template;
// anything else falls through to the generic default, so no mood produces
// empty output.
func Explain(mood MoodTarget, c Characteristics) string {
	switch mood.Mood() {
	case MoodHappy:
		return fmt.Sprintf(
			"I've curated %d %s tracks with %s rhythms to match your happy mood. "+
				"This playlist features %d diverse artists with %s vibes, "+
				"averaging %d BPM to keep your positive energy flowing.",
			c.TrackCount, c.EnergyDesc, c.TempoDesc, c.UniqueArtists, c.MoodDesc, int(c.AvgTempo))
	case MoodExcited:
		return fmt.Sprintf(
			"This %d-track playlist brings the excitement with %s, %s beats! "+
				"Featuring %d different artists, these %s tracks "+
				"will fuel your enthusiasm and keep the energy high.",
			c.TrackCount, c.EnergyDesc, c.TempoDesc, c.UniqueArtists, c.MoodDesc)
	case MoodEnergetic:
		return fmt.Sprintf(
			"I've assembled %d %s tracks perfect for your energetic mood. "+
				"With %d diverse artists and an average tempo of %d BPM, "+
				"this playlist will power you through any activity.",
			c.TrackCount, c.EnergyDesc, c.UniqueArtists, int(c.AvgTempo))
	case MoodCalm:
		return fmt.Sprintf(
			"This %d-track collection offers %s, %s music to help you relax. "+
				"Featuring %d artists, these %s tracks average %d BPM, "+
				"creating the perfect peaceful atmosphere.",
			c.TrackCount, c.EnergyDesc, c.TempoDesc, c.UniqueArtists, c.MoodDesc, int(c.AvgTempo))
	case MoodRelaxed:
		return fmt.Sprintf(
			"I've selected %d %s tracks from %d artists to enhance your relaxation. "+
				"These %s, %s songs create a soothing flow perfect for unwinding.",
			c.TrackCount, c.EnergyDesc, c.UniqueArtists, c.TempoDesc, c.MoodDesc)
	case MoodFocused:
		return fmt.Sprintf(
			"This %d-track playlist is designed to enhance concentration with %s, %s music. "+
				"Featuring %d diverse artists, these %s tracks maintain a steady %d BPM "+
				"to help you stay in the zone.",
			c.TrackCount, c.EnergyDesc, c.TempoDesc, c.UniqueArtists, c.MoodDesc, int(c.AvgTempo))
	case MoodSad:
		return fmt.Sprintf(
			"I've curated %d %s tracks to honor your current mood. "+
				"With %d thoughtful artists, these %s songs provide comfort "+
				"while allowing you to process your emotions.",
			c.TrackCount, c.EnergyDesc, c.UniqueArtists, c.MoodDesc)
	case MoodMelancholy:
		return fmt.Sprintf(
			"This %d-track collection embraces melancholy with %s, %s selections. "+
				"Featuring %d artists, these %s tracks offer cathartic beauty "+
				"at a reflective %d BPM.",
			c.TrackCount, c.EnergyDesc, c.TempoDesc, c.UniqueArtists, c.MoodDesc, int(c.AvgTempo))
	case MoodAngry:
		return fmt.Sprintf(
			"I've assembled %d %s tracks to channel your intensity. "+
				"These %s songs from %d artists deliver %s power, "+
				"averaging %d BPM to match your fierce energy.",
			c.TrackCount, c.EnergyDesc, c.TempoDesc, c.UniqueArtists, c.MoodDesc, int(c.AvgTempo))
	default:
		return fmt.Sprintf(
			"I've curated %d tracks featuring %d diverse artists "+
				"to match your %s mood. These %s, %s selections "+
				"create a %s atmosphere perfect for your current state.",
			c.TrackCount, c.UniqueArtists, mood.Mood(), c.EnergyDesc, c.TempoDesc, c.MoodDesc)
	}
}
