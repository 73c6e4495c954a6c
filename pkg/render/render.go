// Package render turns collected segment data into the single styled line
// the width engine receives. All color decisions live here; segments stay
// plain text.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/pulse-line/pkg/segments"
	"gitlab.com/tinyland/lab/pulse-line/pkg/theme"
)

// powerlineArrow is the solid right-pointing divider glyph.
const powerlineArrow = ""

// Renderer styles ordered segment results according to one theme.
type Renderer struct {
	theme   theme.Theme
	profile termenv.Profile
	styles  *lipgloss.Renderer
}

// New builds a renderer for the given theme. The host application displays
// the line itself, so color output is forced even when stdout is piped;
// NO_COLOR still disables it.
func New(t theme.Theme) *Renderer {
	profile := termenv.TrueColor
	if termenv.EnvNoColor() {
		profile = termenv.Ascii
	}
	return NewWithProfile(t, profile)
}

// NewWithProfile builds a renderer with an explicit color profile. Used by
// tests to pin output independent of the environment.
func NewWithProfile(t theme.Theme, profile termenv.Profile) *Renderer {
	return &Renderer{
		theme:   t,
		profile: profile,
		// The renderer never writes; it only carries the profile. The
		// styled line goes to stdout via the caller.
		styles: lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile)),
	}
}

// Line renders the ordered segment results into one styled line with no
// embedded newlines. An empty result list yields an empty string.
func (r *Renderer) Line(results []segments.Result) string {
	if len(results) == 0 {
		return ""
	}

	var line string
	if r.theme.Powerline {
		line = r.powerlineLine(results)
	} else {
		line = r.plainLine(results)
	}

	// Single-line contract: segment text is trusted not to contain
	// newlines, but the contract is enforced at the boundary anyway.
	line = strings.ReplaceAll(line, "\n", " ")

	if r.profile == termenv.Ascii {
		line = ansi.Strip(line)
	}
	return line
}

// plainLine joins foreground-colored segments with the theme separator.
func (r *Renderer) plainLine(results []segments.Result) string {
	sep := " " + r.styles.NewStyle().
		Foreground(lipgloss.Color(r.theme.SeparatorColor)).
		Render(r.theme.Separator) + " "

	parts := make([]string, 0, len(results))
	for _, res := range results {
		st := r.theme.StyleFor(string(res.ID))
		text := segmentText(st, res.Data)

		styled := r.styles.NewStyle().
			Foreground(lipgloss.Color(st.Foreground)).
			Render(text)
		if res.Data.Secondary != "" {
			styled += " " + r.dim(res.Data.Secondary)
		}
		parts = append(parts, styled)
	}
	return strings.Join(parts, sep)
}

// powerlineLine renders background blocks joined by arrow glyphs whose
// colors bridge adjacent blocks.
func (r *Renderer) powerlineLine(results []segments.Result) string {
	var b strings.Builder
	for i, res := range results {
		st := r.theme.StyleFor(string(res.ID))
		text := segmentText(st, res.Data)
		if res.Data.Secondary != "" {
			text += " " + res.Data.Secondary
		}

		block := r.styles.NewStyle().
			Foreground(lipgloss.Color(st.Foreground)).
			Background(lipgloss.Color(st.Background)).
			Render(" " + text + " ")
		b.WriteString(block)

		arrow := r.styles.NewStyle().Foreground(lipgloss.Color(st.Background))
		if i+1 < len(results) {
			next := r.theme.StyleFor(string(results[i+1].ID))
			arrow = arrow.Background(lipgloss.Color(next.Background))
		}
		b.WriteString(arrow.Render(powerlineArrow))
	}
	return b.String()
}

// dim renders secondary text in the theme's dim color.
func (r *Renderer) dim(s string) string {
	return r.styles.NewStyle().
		Foreground(lipgloss.Color(r.theme.Dim)).
		Render(s)
}

// segmentText prefixes the segment's primary text with its themed icon.
func segmentText(st theme.SegmentStyle, data segments.SegmentData) string {
	if st.Icon == "" {
		return data.Primary
	}
	return st.Icon + " " + data.Primary
}
