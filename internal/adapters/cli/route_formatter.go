package cli

import (
	"fmt"
	"strings"

	domainRouting "github.com/andrescamacho/galaxy-routing-go/internal/domain/routing"
)

// RouteFormatter renders a planned route as an indented hop list
type RouteFormatter struct {
	useEmojis bool
}

// NewRouteFormatter creates a plain-text route formatter
func NewRouteFormatter() *RouteFormatter {
	return &RouteFormatter{}
}

// WithEmojis enables hop-kind icons
func (f *RouteFormatter) WithEmojis() *RouteFormatter {
	f.useEmojis = true
	return f
}

// FormatRoute renders the stars of a route with one line per hop
func (f *RouteFormatter) FormatRoute(route *domainRouting.RouteResponse) string {
	if route == nil || len(route.Stars) == 0 {
		return "(empty route)\n"
	}

	var builder strings.Builder
	builder.WriteString(route.Stars[0])
	builder.WriteString("\n")

	elapsed := 0
	for i, step := range route.Steps {
		prefix := "├── "
		if i == len(route.Steps)-1 {
			prefix = "└── "
		}
		elapsed += step.Ticks
		fmt.Fprintf(&builder, "%s%s%s  %.1fu, %d ticks (t+%d)%s\n",
			prefix, f.kindIcon(step), step.To, step.Distance, step.Ticks, elapsed, f.kindLabel(step))
	}
	return builder.String()
}

func (f *RouteFormatter) kindLabel(step *domainRouting.RouteStepData) string {
	switch {
	case step.Wormhole:
		return " [wormhole]"
	case step.Warp:
		return " [warp]"
	default:
		return ""
	}
}

func (f *RouteFormatter) kindIcon(step *domainRouting.RouteStepData) string {
	if !f.useEmojis {
		return ""
	}
	switch {
	case step.Wormhole:
		return "🌀 "
	case step.Warp:
		return "⚡ "
	default:
		return "🚀 "
	}
}
