package readtime

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestEstimate_RoundsUp(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{1, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{1000, 5},
	}
	for _, tc := range cases {
		if got := Estimate(words(tc.words)); got != tc.want {
			t.Errorf("Estimate(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestEstimate_EmptyContentIsOneMinute(t *testing.T) {
	if got := Estimate(""); got != MinMinutes {
		t.Errorf("Estimate(empty) = %d, want %d", got, MinMinutes)
	}
}

func TestEstimate_ClampsToMax(t *testing.T) {
	if got := Estimate(words(wordsPerMinute * (MaxMinutes + 10))); got != MaxMinutes {
		t.Errorf("Estimate(huge) = %d, want %d", got, MaxMinutes)
	}
}

func TestEstimate_IgnoresMarkup(t *testing.T) {
	content := "# Heading\n\n" + words(200) + "\n\n```\ncode\n```"
	// heading text and code still count as words, markup syntax does not
	got := Estimate(content)
	if got != 2 {
		t.Errorf("Estimate(markdown) = %d, want 2", got)
	}
}
