// Package readtime estimates how long a blog post takes to read.
package readtime

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

const (
	wordsPerMinute = 200
	MinMinutes     = 1
	MaxMinutes     = 120
)

var stripPolicy = bluemonday.StrictPolicy()

// Estimate returns the reading time in minutes for a content body. Content may
// be markdown or HTML; it is rendered, stripped of markup, and the remaining
// whitespace-delimited words are counted at 200 wpm, rounded up and clamped
// to [1, 120].
func Estimate(content string) int {
	words := countWords(content)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}

func countWords(content string) int {
	if strings.TrimSpace(content) == "" {
		return 0
	}

	var rendered bytes.Buffer
	if err := goldmark.Convert([]byte(content), &rendered); err != nil {
		// Renderer rejected the input; count the raw text instead.
		return len(strings.Fields(content))
	}

	plain := stripPolicy.Sanitize(rendered.String())
	return len(strings.Fields(plain))
}
