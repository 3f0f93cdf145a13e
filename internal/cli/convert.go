package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/clipboard"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/subtitle"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/timecode"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/transcript"
)

var convertCmd = &cobra.Command{
	Use:   "convert [transcript_file]",
	Short: "Convert a transcript to an SRT document",
	Long: `Convert a timecode-delimited transcript into an SRT subtitle document.

The transcript is read from the given file, from stdin when the argument is
omitted or "-", or from the system clipboard with --from-clipboard. Each cue
starts on a line carrying a timecode pair such as

  00;00;03;15 - 00;00;06;20

and the following lines up to a blank line or the next pair become the cue
text. Timecode components may use ";" or ":" interchangeably.

Examples:
  tc2srt convert transcript.txt
  tc2srt convert transcript.txt --fps 29.97 -o episode01.srt
  tc2srt convert --from-clipboard --copy
  cat transcript.txt | tc2srt convert --fps 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		Float64P("fps", "f", 0, "Frame rate for timecode conversion (default from config)")
	convertCmd.Flags().
		Bool("from-clipboard", false, "Read the transcript from the system clipboard")
	convertCmd.Flags().
		Bool("copy", false, "Copy the resulting document to the system clipboard")
	convertCmd.Flags().
		Bool("stdout", false, "Print the resulting document to stdout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	fps, _ := cmd.Flags().GetFloat64("fps")
	fromClipboard, _ := cmd.Flags().GetBool("from-clipboard")
	copyResult, _ := cmd.Flags().GetBool("copy")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	outputPath, _ := cmd.Flags().GetString("output")

	if fps == 0 {
		fps = cfg.DefaultFPS
	}
	if err := timecode.ValidateRate(fps); err != nil {
		return err
	}
	if !timecode.IsStandardRate(fps) {
		logger.Warnw("Frame rate is not in the standard set",
			"fps", fps,
			"standard", timecode.StandardRates,
		)
	}

	text, sourceName, err := readTranscript(args, fromClipboard)
	if err != nil {
		return err
	}

	logger.Debugw("Converting transcript",
		"source", sourceName,
		"fps", fps,
		"bytes", len(text),
	)

	doc, err := transcript.Convert(text, fps)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if copyResult || cfg.CopyToClipboard {
		if err := clipboard.WriteAll(doc); err != nil {
			return fmt.Errorf("failed to copy result to clipboard: %w", err)
		}
		logger.Infow("Copied document to clipboard")
	}

	// without a file source or an explicit output path the document goes
	// to stdout
	if outputPath == "" && sourceName == "" {
		toStdout = true
	}

	if toStdout {
		fmt.Println(doc)
		if outputPath == "" {
			return nil
		}
	}

	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(sourceName), filepath.Ext(sourceName))
		outputPath = filepath.Join(cfg.OutputDir, base)
	}

	written, err := subtitle.WriteFile(doc, outputPath)
	if err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(written)
	fmt.Printf("Subtitles written: %s\n", absOutput)

	return nil
}

// readTranscript resolves the text source: clipboard, file argument, or
// stdin. The returned name is empty unless the source was a file.
func readTranscript(args []string, fromClipboard bool) (text, sourceName string, err error) {
	if fromClipboard {
		text, err = clipboard.ReadAll()
		if err != nil {
			return "", "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		return text, "", nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "", nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", fmt.Errorf("file not found: %s", path)
		}
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), path, nil
}
