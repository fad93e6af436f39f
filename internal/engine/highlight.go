package engine

import "github.com/fatih/color"

// ColorHighlighter returns a highlighter that colors likelihood labels by score.
// Colors are forced on regardless of terminal detection.
func ColorHighlighter() func(label string) string {
	palette := map[int]*color.Color{
		5: color.New(color.FgRed, color.Bold),
		4: color.New(color.FgRed),
		3: color.New(color.FgYellow),
		2: color.New(color.FgCyan),
		1: color.New(color.FgGreen),
	}
	for _, c := range palette {
		c.EnableColor()
	}

	return func(label string) string {
		c, ok := palette[ScoreLikelihood(label)]
		if !ok {
			return label
		}
		return c.Sprint(label)
	}
}
