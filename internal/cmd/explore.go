package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodcue/go-mood-curator/internal/estimate"
	"github.com/moodcue/go-mood-curator/internal/explore"
)

var (
	exploreCandidates      string
	exploreGroups          int
	exploreMinSize         int
	exploreEstimateMissing bool
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Group a candidate library into named mood groups",
	Long: `Explore clusters a JSON candidate library by audio descriptors into named
mood groups (e.g. "Upbeat Party", "Reflective & Melancholy") and prints a
summary. Useful for getting a feel for a library before curating from it.

Grouping uses k-means, so group membership can vary slightly between runs;
the curation pipeline itself is unaffected and stays deterministic.`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().StringVarP(&exploreCandidates, "candidates", "c", "", "Path to a JSON file with candidate tracks (required)")
	exploreCmd.Flags().IntVarP(&exploreGroups, "groups", "g", 3, "Number of mood groups to detect")
	exploreCmd.Flags().IntVar(&exploreMinSize, "min-size", 3, "Minimum tracks per group (smaller groups become outliers)")
	exploreCmd.Flags().BoolVar(&exploreEstimateMissing, "estimate-missing", false, "Estimate missing audio descriptors from track metadata")

	exploreCmd.MarkFlagRequired("candidates")
}

func runExplore(cmd *cobra.Command, args []string) error {
	tracks, err := readCandidates(exploreCandidates)
	if err != nil {
		return err
	}

	if exploreEstimateMissing {
		tracks = estimate.FillMissing(tracks)
	}

	groups, outliers := explore.GroupByMood(tracks, explore.Config{
		NumGroups:    exploreGroups,
		MinGroupSize: exploreMinSize,
	})

	fmt.Print(explore.FormatGroupSummary(groups, outliers))
	return nil
}
