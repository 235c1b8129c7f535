package format

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/skillsenselab/yt-transcript-service/internal/apperr"
	"github.com/skillsenselab/yt-transcript-service/internal/youtube"
)

func sampleTranscript() *youtube.Transcript {
	return &youtube.Transcript{
		VideoID:        "dQw4w9WgXcQ",
		Language:       "English",
		LanguageCode:   "en",
		IsGenerated:    false,
		IsTranslatable: true,
		Segments: []youtube.Segment{
			{Text: "Hey there", Start: 0.0, Duration: 1.54},
			{Text: "how are you", Start: 1.54, Duration: 2.0},
			{Text: "doing today", Start: 65.25, Duration: 2.0},
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"vtt", VTT, false},
		{"srt", SRT, false},
		{"json", JSON, false},
		{"xml", Text, true},
		{"TEXT", Text, true},
	}

	for _, tc := range tests {
		t.Run("parse "+tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				appErr, ok := apperr.As(err)
				if !ok || appErr.Code != apperr.CodeInvalidFormat {
					t.Errorf("expected INVALID_FORMAT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	out, err := Render(sampleTranscript(), Text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Hey there\nhow are you\ndoing today"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRenderVTT(t *testing.T) {
	out, err := Render(sampleTranscript(), VTT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "WEBVTT\n\n") {
		t.Errorf("expected WEBVTT header, got %q", out[:20])
	}
	// start=65.25 dur=2.0 must render with dot millisecond separator.
	if !strings.Contains(out, "00:01:05.250 --> 00:01:07.250\ndoing today\n") {
		t.Errorf("missing expected cue, got:\n%s", out)
	}
	if !strings.Contains(out, "00:00:00.000 --> 00:00:01.540\nHey there\n") {
		t.Errorf("missing first cue, got:\n%s", out)
	}
}

func TestRenderSRT(t *testing.T) {
	out, err := Render(sampleTranscript(), SRT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "WEBVTT") {
		t.Error("SRT output must not contain a WEBVTT header")
	}
	// start=65.25 dur=2.0 must render with comma millisecond separator.
	if !strings.Contains(out, "3\n00:01:05,250 --> 00:01:07,250\ndoing today\n") {
		t.Errorf("missing expected cue, got:\n%s", out)
	}

	if !strings.HasPrefix(out, "1\n") {
		t.Errorf("expected first cue index line, got:\n%s", out)
	}
}

func TestRenderSRTIndexesMatchSegmentCount(t *testing.T) {
	tr := sampleTranscript()
	out, err := Render(tr, SRT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cues := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n\n")
	if len(cues) != len(tr.Segments) {
		t.Fatalf("expected %d cues, got %d", len(tr.Segments), len(cues))
	}
	for i, cue := range cues {
		firstLine := strings.SplitN(cue, "\n", 2)[0]
		if firstLine != strconv.Itoa(i+1) {
			t.Errorf("cue %d has index line %q", i, firstLine)
		}
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	tr := sampleTranscript()
	out, err := Render(tr, JSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded youtube.Transcript
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.VideoID != tr.VideoID || decoded.LanguageCode != tr.LanguageCode {
		t.Errorf("metadata did not round-trip: %+v", decoded)
	}
	if decoded.IsTranslatable != tr.IsTranslatable || decoded.IsGenerated != tr.IsGenerated {
		t.Errorf("flags did not round-trip: %+v", decoded)
	}
	if len(decoded.Segments) != len(tr.Segments) {
		t.Fatalf("expected %d segments, got %d", len(tr.Segments), len(decoded.Segments))
	}
	for i, s := range decoded.Segments {
		if s != tr.Segments[i] {
			t.Errorf("segment %d did not round-trip: %+v vs %+v", i, s, tr.Segments[i])
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	tr := sampleTranscript()
	for _, k := range []Kind{Text, VTT, SRT, JSON} {
		a, err := Render(tr, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := Render(tr, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != b {
			t.Errorf("%v output is not deterministic", k)
		}
	}
}

func TestRenderEmptyTranscript(t *testing.T) {
	tr := &youtube.Transcript{VideoID: "dQw4w9WgXcQ", LanguageCode: "en"}

	if out, _ := Render(tr, Text); out != "" {
		t.Errorf("expected empty text output, got %q", out)
	}
	if out, _ := Render(tr, VTT); out != "WEBVTT\n\n" {
		t.Errorf("expected bare header, got %q", out)
	}
	if out, _ := Render(tr, SRT); out != "" {
		t.Errorf("expected empty SRT output, got %q", out)
	}
}

func TestContentTypes(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Text, "text/plain; charset=utf-8"},
		{VTT, "text/vtt"},
		{SRT, "application/x-subrip"},
		{JSON, "application/json"},
	}
	for _, tc := range tests {
		if got := tc.kind.ContentType(); got != tc.want {
			t.Errorf("%v: expected %q, got %q", tc.kind, tc.want, got)
		}
	}
}

func TestLongVideoTimestamps(t *testing.T) {
	tr := &youtube.Transcript{
		Segments: []youtube.Segment{
			// Past the 100-hour mark the hour field grows beyond two digits.
			{Text: "marathon", Start: 360000.5, Duration: 1.0},
		},
	}
	out, err := Render(tr, VTT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "100:00:00.500 --> 100:00:01.500") {
		t.Errorf("expected unbounded hour width, got:\n%s", out)
	}
}
