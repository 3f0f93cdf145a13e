package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/timecode"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "List the recognized frame rates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range timecode.StandardRates {
			fmt.Println(r)
		}
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}
