package youtube

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/skillsenselab/yt-transcript-service/internal/apperr"
	"github.com/skillsenselab/yt-transcript-service/internal/httpclient"
	"github.com/skillsenselab/yt-transcript-service/internal/logger"
)

const (
	watchBaseURL = "https://www.youtube.com"
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
)

// Client retrieves transcripts from YouTube. Safe for concurrent use; it
// holds no per-request state beyond the shared immutable transport.
type Client struct {
	http *httpclient.Client
	log  *logger.Logger
}

// New creates a Client from config. The proxy transport (or direct mode) is
// decided here, once, and reused for every request.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hcfg := httpclient.Config{
		BaseURL: watchBaseURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Headers: map[string]string{
			"User-Agent":      userAgent,
			"Accept-Language": "en-US",
			// Skips the EU consent interstitial, which otherwise replaces
			// the watch page.
			"Cookie": "CONSENT=YES+",
		},
	}
	if p := cfg.Proxy(); p != nil {
		hcfg.ProxyURL = p.URL()
	}

	httpc, err := httpclient.New(hcfg)
	if err != nil {
		return nil, err
	}
	return NewWithClient(httpc, log), nil
}

// NewWithClient creates a Client on top of an existing HTTP client.
func NewWithClient(httpc *httpclient.Client, log *logger.Logger) *Client {
	return &Client{
		http: httpc,
		log:  log.WithComponent("youtube"),
	}
}

// GetTranscript fetches the transcript for a video. When opts.Language is set
// the track must match that language code exactly; otherwise an English track
// is preferred, falling back to the first listed track. No auto-translation
// is performed.
func (c *Client) GetTranscript(ctx context.Context, videoID string, opts FetchOptions) (*Transcript, error) {
	tracks, err := c.fetchTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(tracks, opts.Language, videoID)
	if err != nil {
		return nil, err
	}

	segments, err := c.fetchCues(ctx, videoID, track.BaseURL, opts.PreserveFormatting)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})

	c.log.Debug("Transcript fetched", map[string]interface{}{
		"video_id": videoID,
		"language": track.LanguageCode,
		"segments": len(segments),
	})

	return &Transcript{
		VideoID:        videoID,
		Language:       track.Name.SimpleText,
		LanguageCode:   track.LanguageCode,
		IsGenerated:    track.isGenerated(),
		IsTranslatable: track.IsTranslatable,
		Segments:       segments,
	}, nil
}

// ListLanguages returns every transcript track available for the video,
// manual and auto-generated, with translatability flags.
func (c *Client) ListLanguages(ctx context.Context, videoID string) ([]LanguageOption, error) {
	tracks, err := c.fetchTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	options := make([]LanguageOption, 0, len(tracks))
	for _, t := range tracks {
		options = append(options, LanguageOption{
			LanguageCode:   t.LanguageCode,
			LanguageName:   t.Name.SimpleText,
			IsGenerated:    t.isGenerated(),
			IsTranslatable: t.IsTranslatable,
		})
	}
	return options, nil
}

// fetchTracks downloads the watch page and extracts its caption track list.
func (c *Client) fetchTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Path:  "/watch",
		Query: map[string]string{"v": videoID},
	})
	if err != nil {
		return nil, c.translateTransportErr(err, videoID)
	}
	return parseCaptionTracks(resp.Body, videoID)
}

// fetchCues downloads and decodes the timedtext document for a track.
func (c *Client) fetchCues(ctx context.Context, videoID, cueURL string, preserveFormatting bool) ([]Segment, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{Path: cueURL})
	if err != nil {
		return nil, c.translateTransportErr(err, videoID)
	}
	return parseTimedText(resp.Body, preserveFormatting)
}

// translateTransportErr maps transport failures into the apperr taxonomy so
// httpclient error types never escape this package.
func (c *Client) translateTransportErr(err error, videoID string) error {
	var herr *httpclient.Error
	if errors.As(err, &herr) {
		switch herr.Code {
		case httpclient.ErrCodeTimeout:
			return apperr.Timeout(err)
		case httpclient.ErrCodeBlocked:
			return apperr.IPBlocked().WithCause(err)
		case httpclient.ErrCodeNotFound:
			return apperr.VideoUnavailable(videoID).WithCause(err)
		}
	}
	return apperr.NetworkError(err)
}
