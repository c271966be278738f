package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		zap.L().Warn("cannot render markdown", zap.Error(err))
		out = md
	}
	fmt.Fprint(stdout, out)
}
