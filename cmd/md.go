package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report to the terminal with ANSI styling.
// On any rendering error the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
