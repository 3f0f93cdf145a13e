package cli

import (
	"github.com/spf13/cobra"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/config"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tc2srt",
	Short: "Convert timecode-delimited transcripts to SRT subtitles",
	Long: `tc2srt converts human-authored transcripts into SubRip subtitle files.

A transcript marks each cue with a pair of frame-based timecodes
(hours;minutes;seconds;frames, separated by a dash) followed by the cue
text. The frame component is converted to milliseconds under the chosen
frame rate.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default tc2srt.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
