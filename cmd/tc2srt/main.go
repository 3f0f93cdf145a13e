package main

import (
	"os"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
