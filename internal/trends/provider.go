// Package trends produces a short fashion-trend summary from recent video
// transcripts. It is best-effort and always yields a usable string.
package trends

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"core-d-backend/internal/gemini"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultSummary is used whenever the live pipeline yields nothing.
const DefaultSummary = "올해의 핵심 패션 트렌드: 미니멀 스타일, 넓은 핏 실루엣, " +
	"뉴트럴 톤 및 파스텔 컬러가 인기. 편안한 캐주얼과 유니크한 포인트 아이템 조합."

const (
	maxVideos         = 5
	maxTranscriptLen  = 2000
	transcriptWorkers = 3
)

var transcriptLanguages = []string{"ko", "en"}

type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]string, error)
}

type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) (string, error)
}

var errNoVideos = errors.New("no videos found")
var errNoTranscripts = errors.New("no transcripts available")

type Provider struct {
	searcher    VideoSearcher
	transcripts TranscriptFetcher
	summarizer  gemini.Generator
	now         func() time.Time
}

// NewProvider builds a provider. Any nil collaborator makes every call
// return DefaultSummary.
func NewProvider(searcher VideoSearcher, transcripts TranscriptFetcher, summarizer gemini.Generator) *Provider {
	return &Provider{
		searcher:    searcher,
		transcripts: transcripts,
		summarizer:  summarizer,
		now:         time.Now,
	}
}

// Summary runs search, transcript fetch and summarization. Each stage
// contains its own failures; the result falls back to DefaultSummary when a
// whole stage comes up empty. Summary never panics or returns "".
func (p *Provider) Summary(ctx context.Context) (summary string) {
	logger := zerolog.Ctx(ctx)
	if p == nil || p.searcher == nil || p.transcripts == nil || p.summarizer == nil {
		return DefaultSummary
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn().Interface("panic", r).Msg("trend context panicked, using default summary")
			summary = DefaultSummary
		}
	}()

	summary, err := p.run(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("trend context unavailable, using default summary")
		return DefaultSummary
	}
	return summary
}

func (p *Provider) run(ctx context.Context) (string, error) {
	ids := p.collectVideoIDs(ctx)
	if len(ids) == 0 {
		return "", errNoVideos
	}

	transcripts := p.collectTranscripts(ctx, ids)
	if len(transcripts) == 0 {
		return "", errNoTranscripts
	}

	prompt := "다음은 최신 패션 유튜버들의 영상 자막이다. " +
		"여기서 언급되는 **핵심 아이템, 컬러, 스타일 트렌드**를 3줄로 요약해줘." +
		"\n\n---\n\n" + strings.Join(transcripts, "\n\n")

	summary, err := p.summarizer.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarize transcripts: %w", err)
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", errors.New("empty summary")
	}
	return summary, nil
}

// Queries returns the seasonal search queries for t.
func Queries(t time.Time) []string {
	year, month := t.Year(), int(t.Month())
	return []string{
		fmt.Sprintf("%d년 %d월 패션 트렌드", year, month),
		fmt.Sprintf("%d %s 코디 추천", year, Season(t.Month())),
		fmt.Sprintf("Fashion trends %d Korea", year),
	}
}

// Season names the Korean season of month.
func Season(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return "봄"
	case month >= time.June && month <= time.August:
		return "여름"
	case month >= time.September && month <= time.November:
		return "가을"
	default:
		return "겨울"
	}
}

func (p *Provider) collectVideoIDs(ctx context.Context) []string {
	logger := zerolog.Ctx(ctx)
	seen := make(map[string]bool)
	var ids []string

	for _, query := range Queries(p.now()) {
		found, err := p.searcher.SearchVideos(ctx, query, maxVideos)
		if err != nil {
			logger.Debug().Err(err).Str("query", query).Msg("video search failed")
			continue
		}
		if len(found) > maxVideos {
			found = found[:maxVideos]
		}
		for _, id := range found {
			if id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		if len(ids) >= maxVideos {
			break
		}
	}

	if len(ids) > maxVideos {
		ids = ids[:maxVideos]
	}
	return ids
}

// collectTranscripts fetches transcripts concurrently and keeps the input
// order. Failed or empty transcripts are skipped.
func (p *Provider) collectTranscripts(ctx context.Context, ids []string) []string {
	logger := zerolog.Ctx(ctx)
	results := make([]string, len(ids))

	var g errgroup.Group
	g.SetLimit(transcriptWorkers)
	for i, id := range ids {
		g.Go(func() error {
			text, err := p.transcripts.FetchTranscript(ctx, id, transcriptLanguages)
			if err != nil {
				logger.Debug().Err(err).Str("video_id", id).Msg("transcript fetch failed")
				return nil
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return nil
			}
			if r := []rune(text); len(r) > maxTranscriptLen {
				text = string(r[:maxTranscriptLen]) + "..."
			}
			results[i] = fmt.Sprintf("[영상 %s]\n%s", id, text)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0, len(results))
	for _, r := range results {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
