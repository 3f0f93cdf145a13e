package transcript

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/subtitle"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/timecode"
)

var (
	// raw text has no non-whitespace content
	ErrEmptyInput = errors.New("input is empty: paste or load a transcript first")

	// the scan completed but produced zero cues
	ErrNoTimecodes = errors.New("no valid timecodes found: expected pairs like 00;00;03;15 - 00;00;06;20")
)

// MalformedTimecodeError reports a timecode that matched the scan pattern but
// did not decompose into exactly 4 numeric components.
type MalformedTimecodeError struct {
	Line int // 1-based source line number
	Err  error
}

func (e *MalformedTimecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *MalformedTimecodeError) Unwrap() error { return e.Err }

// A timecode candidate is 3 or 4 groups of 1-2 digits separated by ";" or
// ":". Allowing 3 groups here is deliberate: a short timecode like 00;00;03
// must be found by the scan so the 4-component check in timecode.Parse can
// reject it with its source line number instead of the pair being skipped as
// plain text. The dash between the two candidates may be a hyphen, en-dash,
// or em-dash with optional surrounding whitespace.
var timecodePair = regexp.MustCompile(
	`(\d{1,2}(?:[;:]\d{1,2}){2,3})\s*[-–—]\s*(\d{1,2}(?:[;:]\d{1,2}){2,3})`,
)

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Convert parses a timecode-delimited transcript and renders it as an SRT
// document under the given frame rate.
func Convert(input string, fps float64) (string, error) {
	cues, err := Parse(input, fps)
	if err != nil {
		return "", err
	}
	return subtitle.Render(cues), nil
}

// Parse scans the transcript line by line and groups text between timecode
// pairs into cues. A line matching the timecode-pair pattern starts a new
// cue; subsequent non-blank lines accumulate as its text; a blank line or
// the next timecode pair finalizes it. A cue that never accumulated text is
// dropped, never emitted.
func Parse(input string, fps float64) ([]subtitle.Cue, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	if err := timecode.ValidateRate(fps); err != nil {
		return nil, err
	}

	var cues []subtitle.Cue
	var current *subtitle.Cue
	var textLines []string

	finalize := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			cues = append(cues, *current)
		}
		current = nil
		textLines = nil
	}

	for i, line := range lineBreak.Split(input, -1) {
		if strings.TrimSpace(line) == "" {
			// a blank line with no accumulated text is a no-op: the
			// in-progress cue stays open
			if len(textLines) > 0 {
				finalize()
			}
			continue
		}

		if m := timecodePair.FindStringSubmatchIndex(line); m != nil {
			// an in-progress cue without text is silently dropped here
			finalize()

			start, err := timecode.Parse(line[m[2]:m[3]])
			if err != nil {
				return nil, &MalformedTimecodeError{Line: i + 1, Err: err}
			}
			end, err := timecode.Parse(line[m[4]:m[5]])
			if err != nil {
				return nil, &MalformedTimecodeError{Line: i + 1, Err: err}
			}

			current = &subtitle.Cue{
				Start: start.Timestamp(fps),
				End:   end.Timestamp(fps),
			}

			// text after the second timecode becomes the first cue line
			if trailing := strings.TrimSpace(line[m[1]:]); trailing != "" {
				textLines = append(textLines, trailing)
			}
			continue
		}

		if current != nil {
			textLines = append(textLines, strings.TrimSpace(line))
		}
		// text before the first timecode is ignored
	}
	finalize()

	if len(cues) == 0 {
		return nil, ErrNoTimecodes
	}
	return cues, nil
}
