package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Render produces the SRT document for the cues in order. Each cue gets its
// 1-based positional index on its own line, the timing line, its text lines,
// and a blank separator. Trailing whitespace is trimmed from the result.
func Render(cues []Cue) string {
	var sb strings.Builder
	for i, cue := range cues {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n", cue.Start, cue.End))

		// text
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// WriteFile writes an already rendered document to path, creating parent
// directories as needed. The path is forced to carry a .srt suffix.
func WriteFile(doc, path string) (string, error) {
	path = EnsureExtension(path)
	if err := ensureDir(path); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write subtitle file: %w", err)
	}
	return path, nil
}

// EnsureExtension appends .srt when the path carries no .srt suffix.
func EnsureExtension(path string) string {
	if strings.ToLower(filepath.Ext(path)) != ".srt" {
		return path + ".srt"
	}
	return path
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
