// Package format renders transcripts into their textual representations:
// plain text, WebVTT, SRT, and JSON. Rendering is pure and deterministic;
// the same transcript and kind always produce byte-identical output.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillsenselab/yt-transcript-service/internal/apperr"
	"github.com/skillsenselab/yt-transcript-service/internal/youtube"
)

// Kind is the closed set of output formats.
type Kind int

const (
	// Text joins segment texts with newlines, no timing information.
	Text Kind = iota
	// VTT renders a WebVTT subtitle document.
	VTT
	// SRT renders a SubRip subtitle document.
	SRT
	// JSON serializes the full transcript including metadata.
	JSON
)

// String returns the wire name of the format.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case VTT:
		return "vtt"
	case SRT:
		return "srt"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ContentType returns the response content type for the format.
func (k Kind) ContentType() string {
	switch k {
	case VTT:
		return "text/vtt"
	case SRT:
		return "application/x-subrip"
	case JSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Parse converts a wire name into a Kind. The empty string selects Text.
// Anything else fails with INVALID_FORMAT.
func Parse(s string) (Kind, error) {
	switch s {
	case "", "text":
		return Text, nil
	case "vtt":
		return VTT, nil
	case "srt":
		return SRT, nil
	case "json":
		return JSON, nil
	default:
		return Text, apperr.InvalidFormat(s)
	}
}

// Render produces the textual representation of a transcript.
func Render(t *youtube.Transcript, k Kind) (string, error) {
	switch k {
	case Text:
		return renderText(t), nil
	case VTT:
		return renderVTT(t), nil
	case SRT:
		return renderSRT(t), nil
	case JSON:
		return renderJSON(t)
	default:
		return "", apperr.InvalidFormat(k.String())
	}
}

func renderText(t *youtube.Transcript) string {
	lines := make([]string, len(t.Segments))
	for i, s := range t.Segments {
		lines[i] = s.Text
	}
	return strings.Join(lines, "\n")
}

func renderVTT(t *youtube.Transcript) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, s := range t.Segments {
		fmt.Fprintf(&b, "%s --> %s\n%s\n\n", vttTimestamp(s.Start), vttTimestamp(s.End()), s.Text)
	}
	return b.String()
}

func renderSRT(t *youtube.Transcript) string {
	var b strings.Builder
	for i, s := range t.Segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, srtTimestamp(s.Start), srtTimestamp(s.End()), s.Text)
	}
	return b.String()
}

func renderJSON(t *youtube.Transcript) (string, error) {
	out, err := json.Marshal(t)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return string(out), nil
}

// vttTimestamp renders seconds as HH:MM:SS.mmm. Hours are zero-padded to two
// digits but unbounded above 99.
func vttTimestamp(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// srtTimestamp is the VTT timestamp with a comma millisecond separator.
func srtTimestamp(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

func splitTimestamp(seconds float64) (h, m, s, ms int64) {
	totalMs := int64(seconds*1000 + 0.5)
	ms = totalMs % 1000
	totalSec := totalMs / 1000
	s = totalSec % 60
	m = (totalSec / 60) % 60
	h = totalSec / 3600
	return h, m, s, ms
}
