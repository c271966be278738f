// Package renderer formats simulation results as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// Options holds configuration for rendering a simulation report.
type Options struct {
	SkipDeals bool // Do not render the deals section.
}

// RenderSimulation renders a simulation report to a markdown string.
func RenderSimulation(s *Simulation, opts Options) string {
	partials := map[string]string{
		"simulation_title":     "simulation_title.md",
		"simulation_summary":   "simulation_summary.md",
		"simulation_breakdown": "simulation_breakdown.md",
		"simulation_deals":     "simulation_deals.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipDeals {
		partials["simulation_deals"] = ""
	}
	return renderTemplate("simulation", "simulation.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, path.Join("templates", mainFile))
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, path.Join("templates", file))
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
