package transcript

import (
	"errors"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	input := "00;00;03;15 - 00;00;06;20\nHello world\n\n00;00;06;21 - 00;00;09;10\nSecond line"

	want := `1
00:00:03,625 --> 00:00:06,833
Hello world

2
00:00:06,875 --> 00:00:09,417
Second line`

	got, err := Convert(input, 24)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got != want {
		t.Errorf("Convert mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		_, err := Convert(input, 24)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Convert(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestConvertNoTimecodes(t *testing.T) {
	input := "just some text\nwith no timing information\n\nat all"
	_, err := Convert(input, 24)
	if !errors.Is(err, ErrNoTimecodes) {
		t.Errorf("error = %v, want ErrNoTimecodes", err)
	}
}

func TestConvertInvalidRate(t *testing.T) {
	input := "00;00;03;15 - 00;00;06;20\nHello"
	for _, fps := range []float64{0, -24} {
		if _, err := Convert(input, fps); err == nil {
			t.Errorf("Convert with fps=%v expected error, got nil", fps)
		}
	}
}

func TestConvertMalformedTimecode(t *testing.T) {
	input := "00;00;01;00 - 00;00;02;00\nFine cue\n\n00;00;03 - 00;00;06;20\nBroken cue"

	_, err := Convert(input, 24)
	var malformed *MalformedTimecodeError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedTimecodeError", err)
	}
	if malformed.Line != 4 {
		t.Errorf("Line = %d, want 4", malformed.Line)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error message %q does not cite line 4", err)
	}
}

func TestParseDropsTextlessCue(t *testing.T) {
	// the first pair never accumulates text and must not be emitted
	input := "00;00;01;00 - 00;00;02;00\n00;00;03;00 - 00;00;04;00\nOnly cue"

	cues, err := Parse(input, 25)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Start != "00:00:03,000" {
		t.Errorf("cue start = %q, want 00:00:03,000", cues[0].Start)
	}
	if cues[0].Text != "Only cue" {
		t.Errorf("cue text = %q, want 'Only cue'", cues[0].Text)
	}
}

func TestParseMixedSeparators(t *testing.T) {
	uniform := "00;00;03;15 - 00;00;06;20\nHello"
	mixed := "00:00:03;15 - 00;00;06:20\nHello"

	a, err := Convert(uniform, 24)
	if err != nil {
		t.Fatalf("uniform separators: %v", err)
	}
	b, err := Convert(mixed, 24)
	if err != nil {
		t.Fatalf("mixed separators: %v", err)
	}
	if a != b {
		t.Errorf("mixed separators parsed differently:\n%s\nvs\n%s", a, b)
	}
}

func TestParseDashVariants(t *testing.T) {
	for _, dash := range []string{"-", "–", "—"} {
		input := "00;00;01;00 " + dash + " 00;00;02;00\nText"
		cues, err := Parse(input, 25)
		if err != nil {
			t.Errorf("dash %q: %v", dash, err)
			continue
		}
		if len(cues) != 1 {
			t.Errorf("dash %q: expected 1 cue, got %d", dash, len(cues))
		}
	}
}

func TestParseTrailingTextOnTimecodeLine(t *testing.T) {
	input := "00;00;01;00 - 00;00;02;00 First line\nSecond line"

	cues, err := Parse(input, 25)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "First line\nSecond line" {
		t.Errorf("cue text = %q, want 'First line\\nSecond line'", cues[0].Text)
	}
}

func TestParseBlankLineBeforeTextKeepsCueOpen(t *testing.T) {
	// a blank line with no accumulated text is a no-op: the cue stays open
	// and picks up the text that follows
	input := "00;00;01;00 - 00;00;02;00\n\nLate text"

	cues, err := Parse(input, 25)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Late text" {
		t.Errorf("cue text = %q, want 'Late text'", cues[0].Text)
	}
}

func TestParseIgnoresTextBeforeFirstTimecode(t *testing.T) {
	input := "Episode 3 transcript\nby some author\n\n00;00;01;00 - 00;00;02;00\nActual cue"

	cues, err := Parse(input, 25)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Actual cue" {
		t.Errorf("cue text = %q, want 'Actual cue'", cues[0].Text)
	}
}

func TestParseCRLFInput(t *testing.T) {
	input := "00;00;01;00 - 00;00;02;00\r\nWindows line\r\n\r\n00;00;03 - 00;00;04;00\r\nBad"

	_, err := Parse(input, 25)
	var malformed *MalformedTimecodeError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedTimecodeError", err)
	}
	if malformed.Line != 4 {
		t.Errorf("Line = %d, want 4 (CRLF input must not shift line numbers)", malformed.Line)
	}
}

func TestParseMultiLineCue(t *testing.T) {
	input := "00;00;01;00 - 00;00;02;00\n  padded line  \nsecond\n\n"

	cues, err := Parse(input, 25)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cues[0].Text != "padded line\nsecond" {
		t.Errorf("cue text = %q, want trimmed joined lines", cues[0].Text)
	}
}

func TestConvertRoundTripTimingLines(t *testing.T) {
	// the emitted timing lines are already in canonical zero-padded form:
	// re-rendering the same timecodes reproduces them byte for byte
	input := "0;0;3;15 - 0;0;6;20\nHello"

	first, err := Convert(input, 24)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	second, err := Convert(input, 24)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if first != second {
		t.Errorf("repeated conversion differs:\n%s\nvs\n%s", first, second)
	}
	if !strings.Contains(first, "00:00:03,625 --> 00:00:06,833") {
		t.Errorf("single-digit components not zero-padded:\n%s", first)
	}
}
