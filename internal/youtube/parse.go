package youtube

import (
	"encoding/json"
	"encoding/xml"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/skillsenselab/yt-transcript-service/internal/apperr"
)

const (
	captionsMarker     = `"captions":`
	videoDetailsMarker = `,"videoDetails`
	recaptchaMarker    = `class="g-recaptcha"`
	playabilityMarker  = `"playabilityStatus":`
)

// captionTrack mirrors one entry of the watch page's caption track list.
type captionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
	LanguageCode   string `json:"languageCode"`
	Kind           string `json:"kind"`
	IsTranslatable bool   `json:"isTranslatable"`
}

// isGenerated reports whether the track is auto-generated. YouTube marks ASR
// tracks with kind "asr"; manual tracks carry no kind.
func (t captionTrack) isGenerated() bool {
	return t.Kind == "asr"
}

// parseCaptionTracks extracts the caption track list from a watch page body.
// The page embeds player data as JSON; the captions block sits between the
// "captions": marker and the following "videoDetails" key.
func parseCaptionTracks(body []byte, videoID string) ([]captionTrack, error) {
	page := string(body)

	parts := strings.SplitN(page, captionsMarker, 2)
	if len(parts) < 2 {
		switch {
		case strings.Contains(page, recaptchaMarker):
			return nil, apperr.IPBlocked()
		case !strings.Contains(page, playabilityMarker):
			return nil, apperr.VideoUnavailable(videoID)
		default:
			return nil, apperr.TranscriptsDisabled(videoID)
		}
	}

	end := strings.Index(parts[1], videoDetailsMarker)
	if end < 0 {
		return nil, apperr.TranscriptsDisabled(videoID)
	}

	var payload struct {
		Renderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	}
	if err := json.Unmarshal([]byte(parts[1][:end]), &payload); err != nil {
		return nil, apperr.TranscriptsDisabled(videoID).WithCause(err)
	}

	if len(payload.Renderer.CaptionTracks) == 0 {
		return nil, apperr.NoTranscriptFound(videoID)
	}
	return payload.Renderer.CaptionTracks, nil
}

// selectTrack picks the caption track for the requested language. Manual
// tracks take precedence over auto-generated ones for the same code.
func selectTrack(tracks []captionTrack, language, videoID string) (captionTrack, error) {
	if language == "" {
		if t, ok := findByLanguage(tracks, "en"); ok {
			return t, nil
		}
		return tracks[0], nil
	}

	if t, ok := findByLanguage(tracks, language); ok {
		return t, nil
	}

	available := make([]string, len(tracks))
	for i, t := range tracks {
		available[i] = t.LanguageCode
	}
	return captionTrack{}, apperr.LanguageNotAvailable(videoID, language, available)
}

func findByLanguage(tracks []captionTrack, code string) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == code && !t.isGenerated() {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == code {
			return t, true
		}
	}
	return captionTrack{}, false
}

// timedTextDoc mirrors the timedtext XML cue document.
type timedTextDoc struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",innerxml"`
	} `xml:"text"`
}

var markupTags = regexp.MustCompile(`<[^>]+>`)

// parseTimedText decodes a timedtext XML document into segments. Cue bodies
// are captured as raw inner XML so inline markup survives when formatting is
// preserved; entities are double-escaped in the source document and need two
// unescape passes.
func parseTimedText(body []byte, preserveFormatting bool) ([]Segment, error) {
	var doc timedTextDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, apperr.NetworkError(err).WithDetail("reason", "malformed cue document")
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, cue := range doc.Texts {
		text := html.UnescapeString(html.UnescapeString(cue.Body))
		if !preserveFormatting {
			text = markupTags.ReplaceAllString(text, "")
		}

		// Drop cues with unparseable timing rather than let them collapse to
		// offset zero. A missing dur attribute still means zero duration.
		start, err := strconv.ParseFloat(cue.Start, 64)
		if err != nil {
			continue
		}
		var dur float64
		if cue.Dur != "" {
			if dur, err = strconv.ParseFloat(cue.Dur, 64); err != nil {
				continue
			}
		}

		segments = append(segments, Segment{
			Text:     text,
			Start:    start,
			Duration: dur,
		})
	}
	return segments, nil
}
