package gochart

import (
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// parseColor accepts #rgb, #rrggbb, rgb()/rgba() and basic color names.
// Anything else yields the zero color.
func parseColor(raw string) drawing.Color {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return drawing.Color{}
	}
	if strings.HasPrefix(raw, "#") && !hexColor.MatchString(raw) {
		return drawing.Color{}
	}
	return drawing.ParseColor(raw)
}

// seriesColor falls back to the go-chart palette for unknown colors.
func seriesColor(raw string, index int) drawing.Color {
	if c := parseColor(raw); !c.IsZero() {
		return c
	}
	return chart.GetDefaultColor(index)
}
