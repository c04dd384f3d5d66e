package explore

import (
	"fmt"
	"strings"

	"github.com/moodcue/go-mood-curator/internal/curation"
)

const sampleTrackCount = 3

// FormatGroupSummary returns a human-readable summary of detected mood
// groups. Shows the group name, track count, mood description, and the
// first few sample tracks for each group. Outliers are summarized by count.
func FormatGroupSummary(groups []Group, outliers []curation.Track) string {
	var sb strings.Builder

	totalTracks := len(outliers)
	for _, g := range groups {
		totalTracks += len(g.Tracks)
	}

	if len(groups) == 0 {
		sb.WriteString(fmt.Sprintf("No mood groups found from %d tracks", totalTracks))
		if len(outliers) > 0 {
			sb.WriteString(fmt.Sprintf(" (%d outliers skipped)", len(outliers)))
		}
		sb.WriteString("\n")
		return sb.String()
	}

	groupWord := "group"
	if len(groups) > 1 {
		groupWord = "groups"
	}

	sb.WriteString(fmt.Sprintf("Found %d mood %s from %d tracks", len(groups), groupWord, totalTracks))
	if len(outliers) > 0 {
		sb.WriteString(fmt.Sprintf(" (%d outliers skipped)", len(outliers)))
	}
	sb.WriteString("\n")

	for i, g := range groups {
		sb.WriteString("\n")
		sb.WriteString(formatGroup(i+1, g))
	}

	return sb.String()
}

// formatGroup formats a single group with its sample tracks.
func formatGroup(num int, g Group) string {
	var sb strings.Builder

	trackWord := "track"
	if len(g.Tracks) > 1 {
		trackWord = "tracks"
	}

	summary := Summarize(g.Centroid)
	sb.WriteString(fmt.Sprintf("Group %d: %s (%d %s)\n", num, g.Name, len(g.Tracks), trackWord))
	sb.WriteString(fmt.Sprintf("  %s\n", summary.Description))
	sb.WriteString(fmt.Sprintf("  energy %.2f, valence %.2f, tempo %.0f BPM\n",
		g.Centroid["energy"], g.Centroid["valence"], g.Centroid["tempo"]))

	sampleCount := min(sampleTrackCount, len(g.Tracks))
	for i := 0; i < sampleCount; i++ {
		track := g.Tracks[i]
		sb.WriteString(fmt.Sprintf("  • %q - %s\n", track.Name, track.LeadArtist()))
	}

	remaining := len(g.Tracks) - sampleTrackCount
	if remaining > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", remaining))
	}

	return sb.String()
}
