package cmd

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/moodcue/go-mood-curator/internal/curation"
	"github.com/moodcue/go-mood-curator/internal/estimate"
)

var (
	curateCandidates      string
	curateMood            string
	curateEnergy          int
	curateIntensity       int
	curateTags            []string
	curatePrefs           string
	curateCount           int
	curateEstimateMissing bool
	curateOutput          string
)

var curateCmd = &cobra.Command{
	Use:   "curate",
	Short: "Curate a playlist for a mood from a candidate track file",
	Long: `Curate reads a JSON array of candidate tracks, scores them against the
target mood, selects a diverse subset, sequences it for smooth energy flow,
and writes the resulting playlist as JSON to stdout (or --output).

Candidates with missing audio descriptors are scored with neutral defaults;
pass --estimate-missing to estimate them from track metadata instead.`,
	RunE: runCurate,
}

func init() {
	rootCmd.AddCommand(curateCmd)

	curateCmd.Flags().StringVarP(&curateCandidates, "candidates", "c", "", "Path to a JSON file with candidate tracks (required)")
	curateCmd.Flags().StringVarP(&curateMood, "mood", "m", "", "Primary mood, e.g. happy, calm, focused (required)")
	curateCmd.Flags().IntVar(&curateEnergy, "energy", 5, "Energy level 1-10")
	curateCmd.Flags().IntVar(&curateIntensity, "intensity", 5, "Emotional intensity 1-10")
	curateCmd.Flags().StringSliceVar(&curateTags, "tags", nil, "Additional mood tags")
	curateCmd.Flags().StringVarP(&curatePrefs, "prefs", "p", "", "Path to a JSON file with listener preferences")
	curateCmd.Flags().IntVarP(&curateCount, "count", "n", 30, "Number of tracks in the final playlist")
	curateCmd.Flags().BoolVar(&curateEstimateMissing, "estimate-missing", false, "Estimate missing audio descriptors from track metadata")
	curateCmd.Flags().StringVarP(&curateOutput, "output", "o", "", "Write the playlist JSON to this file instead of stdout")

	curateCmd.MarkFlagRequired("candidates")
	curateCmd.MarkFlagRequired("mood")
}

func runCurate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	candidates, err := readCandidates(curateCandidates)
	if err != nil {
		return err
	}

	var prefs *curation.Preferences
	if curatePrefs != "" {
		prefs, err = readPreferences(curatePrefs)
		if err != nil {
			return err
		}
	}

	if curateEstimateMissing {
		candidates = estimate.FillMissing(candidates)
		logger.Info("estimated missing audio descriptors", "tracks", len(candidates))
	}

	mood := curation.MoodTarget{
		PrimaryMood:        curateMood,
		EnergyLevel:        curateEnergy,
		EmotionalIntensity: curateIntensity,
		MoodTags:           curateTags,
	}
	logger.Info("mood target", "description", mood.Describe())

	curator := curation.New(cfg.Tuning, logger)
	playlist, err := curator.Curate(candidates, mood, prefs, curateCount)
	if err != nil {
		return fmt.Errorf("curating playlist: %w", err)
	}

	out, err := json.MarshalIndent(playlist, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding playlist: %w", err)
	}
	out = append(out, '\n')

	if curateOutput != "" {
		if err := os.WriteFile(curateOutput, out, 0o644); err != nil {
			return fmt.Errorf("writing playlist: %w", err)
		}
		fmt.Printf("Wrote %d-track playlist to %s\n", len(playlist.Tracks), curateOutput)
		return nil
	}

	_, err = os.Stdout.Write(out)
	return err
}

// readCandidates parses a JSON array of candidate tracks.
func readCandidates(path string) ([]curation.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidates file: %w", err)
	}
	var tracks []curation.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("parsing candidates file %s: %w", path, err)
	}
	return tracks, nil
}

// readPreferences parses a JSON listener-preferences file.
func readPreferences(path string) (*curation.Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preferences file: %w", err)
	}
	var prefs curation.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parsing preferences file %s: %w", path, err)
	}
	return &prefs, nil
}
