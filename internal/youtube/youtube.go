package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// Searcher finds videos through the YouTube Data API.
type Searcher struct {
	service *yt.Service
}

func NewSearcher(ctx context.Context, apiKey string) (*Searcher, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY is not set")
	}
	service, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Searcher{service: service}, nil
}

// SearchVideos returns up to limit video ids for query, in ranking order.
func (s *Searcher) SearchVideos(ctx context.Context, query string, limit int) ([]string, error) {
	resp, err := s.service.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		MaxResults(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search %q: %w", query, err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	return ids, nil
}

// TranscriptClient reads caption tracks from the public timedtext endpoint.
type TranscriptClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTranscriptClient(timeout time.Duration) *TranscriptClient {
	return &TranscriptClient{
		baseURL:    "https://www.youtube.com/api/timedtext",
		httpClient: &http.Client{Timeout: timeout},
	}
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// FetchTranscript returns the caption text for videoID in the first of
// languages that has a track.
func (c *TranscriptClient) FetchTranscript(ctx context.Context, videoID string, languages []string) (string, error) {
	var lastErr error
	for _, lang := range languages {
		text, err := c.fetch(ctx, videoID, lang)
		if err != nil {
			lastErr = err
			continue
		}
		if text != "" {
			return text, nil
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no transcript for video %s in %v", videoID, languages)
	}
	return "", lastErr
}

func (c *TranscriptClient) fetch(ctx context.Context, videoID, lang string) (string, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch transcript: status %d", resp.StatusCode)
	}
	if len(body) == 0 {
		return "", nil
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("failed to decode transcript: %w", err)
	}

	lines := make([]string, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		if s := strings.TrimSpace(html.UnescapeString(line.Text)); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, " "), nil
}
