package render

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/pulse-line/pkg/segments"
	"gitlab.com/tinyland/lab/pulse-line/pkg/theme"
)

func testResults() []segments.Result {
	return []segments.Result{
		{ID: segments.IDDirectory, Data: segments.SegmentData{Primary: "myproj"}},
		{ID: segments.IDGit, Data: segments.SegmentData{Primary: "main", Secondary: "±2"}},
		{ID: segments.IDModel, Data: segments.SegmentData{Primary: "Sonnet 4.5"}},
	}
}

func TestLineEmptyResults(t *testing.T) {
	r := NewWithProfile(theme.Get("default"), termenv.Ascii)
	if got := r.Line(nil); got != "" {
		t.Errorf("Line(nil) = %q, want empty", got)
	}
}

func TestLinePlainJoin(t *testing.T) {
	r := NewWithProfile(theme.Get("minimal"), termenv.Ascii)
	got := r.Line(testResults())

	for _, want := range []string{"myproj", "main", "±2", "Sonnet 4.5"} {
		if !strings.Contains(got, want) {
			t.Errorf("line %q missing %q", got, want)
		}
	}
	if strings.Count(got, "|") != 2 {
		t.Errorf("expected 2 separators in %q", got)
	}
	// Segment order follows result order.
	if strings.Index(got, "myproj") > strings.Index(got, "main") {
		t.Errorf("unexpected segment order in %q", got)
	}
}

func TestLineAsciiProfileHasNoEscapes(t *testing.T) {
	r := NewWithProfile(theme.Get("default"), termenv.Ascii)
	got := r.Line(testResults())
	if strings.ContainsRune(got, '\x1b') {
		t.Errorf("ascii profile output contains escapes: %q", got)
	}
}

func TestLineTrueColorStyles(t *testing.T) {
	r := NewWithProfile(theme.Get("default"), termenv.TrueColor)
	got := r.Line(testResults())
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI styling in %q", got)
	}
	if !strings.Contains(got, "myproj") {
		t.Errorf("line %q missing segment text", got)
	}
}

func TestLineNeverContainsNewlines(t *testing.T) {
	results := testResults()
	results = append(results, segments.Result{
		ID:   segments.IDSession,
		Data: segments.SegmentData{Primary: "abc\ndef"},
	})
	r := NewWithProfile(theme.Get("default"), termenv.TrueColor)
	if got := r.Line(results); strings.ContainsRune(got, '\n') {
		t.Errorf("line contains newline: %q", got)
	}
}

func TestLinePowerlineMode(t *testing.T) {
	r := NewWithProfile(theme.Get("powerline"), termenv.Ascii)
	got := r.Line(testResults())
	if !strings.Contains(got, powerlineArrow) {
		t.Errorf("expected powerline arrows in %q", got)
	}
	// Blocks pad their content with spaces.
	if !strings.Contains(got, " myproj ") {
		t.Errorf("expected padded block in %q", got)
	}
}

func TestLineSecondaryRenderedAfterPrimary(t *testing.T) {
	r := NewWithProfile(theme.Get("minimal"), termenv.Ascii)
	got := r.Line(testResults())
	if strings.Index(got, "main") > strings.Index(got, "±2") {
		t.Errorf("secondary precedes primary in %q", got)
	}
}
