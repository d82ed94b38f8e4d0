package main

import (
	"github.com/fatih/color"
)

// Colorizer renders the interactive prompt and error banners, kept behind
// an interface because colorized output is explicitly a collaborator, not
// core interpreter behavior (spec.md §6).
type Colorizer interface {
	Prompt(s string) string
	Error(s string) string
}

type noopColorizer struct{}

func (noopColorizer) Prompt(s string) string { return s }
func (noopColorizer) Error(s string) string  { return s }

// fatihColorizer adapts github.com/fatih/color: the prompt is bolded cyan,
// error banners bolded red, matching the teacher pack's convention of
// using fatih/color for CLI status coloring.
type fatihColorizer struct {
	prompt *color.Color
	err    *color.Color
}

// NewFatihColorizer constructs a Colorizer backed by github.com/fatih/color.
func NewFatihColorizer() Colorizer {
	return &fatihColorizer{
		prompt: color.New(color.FgCyan, color.Bold),
		err:    color.New(color.FgRed, color.Bold),
	}
}

func (c *fatihColorizer) Prompt(s string) string { return c.prompt.Sprint(s) }
func (c *fatihColorizer) Error(s string) string  { return c.err.Sprint(s) }
