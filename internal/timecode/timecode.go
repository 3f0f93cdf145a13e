package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// frame rates offered by the standard selector; any positive rate is accepted
var StandardRates = []float64{23.976, 24, 25, 29.97, 30, 50, 59.94, 60}

// represents a frame-accurate time reference in hours;minutes;seconds;frames form.
// Hours, minutes, and seconds keep their source text: rendering pads them for
// display but never reinterprets or range-checks the values, so "75" seconds
// passes through verbatim.
type Timecode struct {
	Hours   string
	Minutes string
	Seconds string
	Frames  int
}

var componentSep = regexp.MustCompile(`[;:]`)

// Parse splits a matched timecode on ";" or ":" into exactly 4 components.
// The separators are interchangeable and may be mixed within one timecode.
func Parse(s string) (Timecode, error) {
	parts := componentSep.Split(s, -1)
	if len(parts) != 4 {
		return Timecode{}, fmt.Errorf(
			"timecode %q has %d components, expected 4 (hours;minutes;seconds;frames)",
			s, len(parts),
		)
	}

	frames, err := strconv.Atoi(parts[3])
	if err != nil {
		return Timecode{}, fmt.Errorf("invalid frame count %q in timecode %q: %w", parts[3], s, err)
	}

	return Timecode{
		Hours:   parts[0],
		Minutes: parts[1],
		Seconds: parts[2],
		Frames:  frames,
	}, nil
}

// Timestamp renders the timecode as an SRT timestamp (HH:MM:SS,mmm) under the
// given frame rate. The frame component becomes round(frames/fps*1000)
// milliseconds, zero-padded to 3 digits; values of 1000 or more are rendered
// as-is rather than clamped or carried into seconds.
func (t Timecode) Timestamp(fps float64) string {
	millis := int(math.Round(float64(t.Frames) / fps * 1000))
	return fmt.Sprintf("%s:%s:%s,%03d", pad2(t.Hours), pad2(t.Minutes), pad2(t.Seconds), millis)
}

// ValidateRate accepts any positive frame rate.
func ValidateRate(fps float64) error {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return fmt.Errorf("frame rate must be a positive number, got %v", fps)
	}
	return nil
}

func IsStandardRate(fps float64) bool {
	for _, r := range StandardRates {
		if r == fps {
			return true
		}
	}
	return false
}

// display pad only, the numeric value is never reinterpreted
func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
