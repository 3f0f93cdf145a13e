package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ReadAll returns the text content of the system clipboard.
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return text, nil
}

// WriteAll places text on the system clipboard.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("nothing to copy: text is empty")
	}
	return clipboard.WriteAll(text)
}
