package curation

// SelectDiverse picks up to desiredCount tracks from a ranked list using a
// two-pass greedy strategy.
//
// Pass 1 walks the ranked list in order and admits a track only while its
// lead artist has fewer than artistCap admissions. Pass 2 runs only when
// pass 1 under-fills: it re-walks the ranked list from the top and admits
// any not-yet-selected track regardless of artist, so the result is always
// min(desiredCount, len(ranked)) tracks. Diversity is a soft objective;
// count satisfaction is a hard one.
func SelectDiverse(ranked []ScoredTrack, desiredCount, artistCap int) []ScoredTrack {
	if desiredCount <= 0 || len(ranked) == 0 {
		return nil
	}
	if artistCap <= 0 {
		artistCap = DefaultTuning().ArtistCap
	}

	selected := make([]ScoredTrack, 0, min(desiredCount, len(ranked)))
	taken := make([]bool, len(ranked))
	artistCount := make(map[string]int)

	// Pass 1: strict artist cap.
	for i := range ranked {
		if len(selected) >= desiredCount {
			break
		}
		artist := ranked[i].LeadArtist()
		if artistCount[artist] >= artistCap {
			continue
		}
		selected = append(selected, ranked[i])
		taken[i] = true
		artistCount[artist]++
	}

	// Pass 2: relax the cap to fill any shortfall.
	for i := range ranked {
		if len(selected) >= desiredCount {
			break
		}
		if taken[i] {
			continue
		}
		selected = append(selected, ranked[i])
		taken[i] = true
	}

	return selected
}
