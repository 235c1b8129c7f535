// Package youtube retrieves video transcripts by scraping the watch page's
// caption track metadata and fetching the referenced timedtext documents.
// All upstream failure modes are translated into the apperr taxonomy at this
// boundary, so callers never see page-scrape or transport details.
package youtube

// Segment is a single timed line of transcript text.
type Segment struct {
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
	// Start is the segment start offset in seconds.
	Start float64 `json:"start"`
	// Duration is the segment duration in seconds.
	Duration float64 `json:"duration"`
}

// End returns the segment end offset in seconds.
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// Transcript is an ordered collection of timed text segments for one video in
// one language. Segments are sorted by start time ascending. Built fresh per
// request and never persisted.
type Transcript struct {
	// VideoID is the 11-character YouTube video identifier.
	VideoID string `json:"video_id"`
	// Language is the human-readable language name (e.g. "English").
	Language string `json:"language"`
	// LanguageCode is the BCP-47 language code (e.g. "en").
	LanguageCode string `json:"language_code"`
	// IsGenerated is true for auto-generated (ASR) tracks.
	IsGenerated bool `json:"is_generated"`
	// IsTranslatable is true when the track can be translated.
	IsTranslatable bool `json:"is_translatable"`
	// Segments are the timed text cues, sorted by start time.
	Segments []Segment `json:"segments"`
}

// LanguageOption describes one available transcript track for a video.
type LanguageOption struct {
	// LanguageCode is the BCP-47 language code of the track.
	LanguageCode string `json:"language_code"`
	// LanguageName is the human-readable language name.
	LanguageName string `json:"language_name"`
	// IsGenerated is true for auto-generated (ASR) tracks.
	IsGenerated bool `json:"is_generated"`
	// IsTranslatable is true when the track can be translated.
	IsTranslatable bool `json:"is_translatable"`
}

// FetchOptions controls transcript retrieval.
type FetchOptions struct {
	// Language requests a specific track by language code. Empty selects the
	// default track (an English track when present, else the first listed).
	Language string
	// PreserveFormatting keeps HTML-like markup (<i>, <b>) in segment text
	// instead of stripping it.
	PreserveFormatting bool
}
