package services

import (
	"context"
	"errors"

	"core-d-backend/internal/fashion"
	"core-d-backend/internal/imaging"
	"core-d-backend/internal/jsonx"
	"core-d-backend/internal/models"
	"core-d-backend/internal/stylist"
	"core-d-backend/internal/trends"

	"github.com/rs/zerolog"
)

// ImageStore hosts processed wardrobe images.
type ImageStore interface {
	UploadPNG(ctx context.Context, data []byte) (string, error)
}

// TrendSource supplies the trend context for recommendations. It must always
// return a usable string.
type TrendSource interface {
	Summary(ctx context.Context) string
}

type StylingService struct {
	preprocessor *imaging.Preprocessor
	stylist      *stylist.Stylist
	trends       TrendSource
	store        ImageStore
}

// NewStylingService wires the styling pipeline. st is nil when no model
// key is configured; store is nil when storage is disabled.
func NewStylingService(
	preprocessor *imaging.Preprocessor,
	st *stylist.Stylist,
	trendSource TrendSource,
	store ImageStore,
) *StylingService {
	return &StylingService{
		preprocessor: preprocessor,
		stylist:      st,
		trends:       trendSource,
		store:        store,
	}
}

// Analyze removes the background of an uploaded garment, classifies it and
// recommends complementary garments. The returned response is never nil;
// on error it carries whatever was computed before the failure.
func (s *StylingService) Analyze(ctx context.Context, raw []byte, contentType, aesthetic, personalColor string) (*models.AnalyzeResponse, error) {
	resp := &models.AnalyzeResponse{}
	if err := fashion.ValidatePreferences(aesthetic, personalColor); err != nil {
		return resp, err
	}

	processed, err := s.preprocess(ctx, raw, contentType)
	if err != nil {
		return resp, err
	}
	resp.ProcessedImageBase64 = processed.Base64

	if s.stylist == nil {
		return resp, ErrGeminiNotConfigured
	}

	trendCh := make(chan string, 1)
	go func() {
		trendCh <- s.trendContext(ctx)
	}()

	itemType, err := s.stylist.Classify(ctx, processed.PNG)
	if err != nil {
		return resp, &StepError{Step: "옷 종류 판별", Err: err}
	}

	var trendContext string
	select {
	case trendContext = <-trendCh:
	case <-ctx.Done():
		return resp, &StepError{Step: "트렌드 수집", Err: ctx.Err()}
	}

	recommendations, err := s.stylist.Recommend(ctx, processed.PNG, itemType, aesthetic, personalColor, trendContext)
	if err != nil {
		return resp, wrapModelError("Gemini 이미지 분석", err)
	}

	resp.Success = true
	resp.ItemType = string(itemType)
	resp.Recommendations = recommendations
	return resp, nil
}

// ProcessWardrobe prepares a garment for the user's closet: background
// removal, classification and best-effort hosting of the result.
func (s *StylingService) ProcessWardrobe(ctx context.Context, raw []byte, contentType string) (*models.WardrobeProcessResponse, error) {
	resp := &models.WardrobeProcessResponse{}

	processed, err := s.preprocess(ctx, raw, contentType)
	if err != nil {
		return resp, err
	}
	resp.ProcessedImageBase64 = processed.Base64

	if s.stylist == nil {
		return resp, ErrGeminiNotConfigured
	}

	itemType, err := s.stylist.Classify(ctx, processed.PNG)
	if err != nil {
		return resp, &StepError{Step: "옷 종류 판별", Err: err}
	}

	resp.Success = true
	resp.ItemType = string(itemType)
	resp.ImageURL = s.upload(ctx, processed.PNG)
	return resp, nil
}

// Coordinate recommends up to three outfits built from the user's wardrobe.
func (s *StylingService) Coordinate(ctx context.Context, req *models.ClosetCoordinateRequest) (*models.ClosetCoordinateResponse, error) {
	resp := &models.ClosetCoordinateResponse{Coordinations: []models.Coordination{}}
	if err := fashion.ValidatePreferences(req.Aesthetic, req.PersonalColor); err != nil {
		return resp, err
	}
	if s.stylist == nil {
		return resp, ErrGeminiNotConfigured
	}

	selectedPNG, err := imaging.DecodeBase64(req.SelectedItem.ImageBase64)
	if err != nil {
		return resp, &StepError{Step: "선택한 옷 이미지 읽기", Err: err}
	}
	selected := stylist.Garment{ID: stylist.SelectedID, ItemType: req.SelectedItem.ItemType, PNG: selectedPNG}

	wardrobe := make([]stylist.Garment, len(req.WardrobeItems))
	for i, item := range req.WardrobeItems {
		png, err := imaging.DecodeBase64(item.ImageBase64)
		if err != nil {
			return resp, &StepError{Step: "옷장 아이템 " + item.ID + " 이미지 읽기", Err: err}
		}
		wardrobe[i] = stylist.Garment{ID: item.ID, ItemType: item.ItemType, PNG: png}
	}

	coordinations, err := s.stylist.Coordinate(ctx, selected, wardrobe, req.Aesthetic, req.PersonalColor)
	if err != nil {
		return resp, wrapModelError("코디 추천", err)
	}

	resp.Success = true
	resp.Coordinations = coordinations
	return resp, nil
}

// ShopSearch suggests shopping keywords for the selected item and attaches
// platform search links.
func (s *StylingService) ShopSearch(ctx context.Context, req *models.ShopSearchRequest) (*models.ShopSearchResponse, error) {
	resp := &models.ShopSearchResponse{Recommendations: []models.ShopRecommendation{}}
	if err := fashion.ValidatePreferences(req.Aesthetic, req.PersonalColor); err != nil {
		return resp, err
	}
	if s.stylist == nil {
		return resp, ErrGeminiNotConfigured
	}

	png, err := imaging.DecodeBase64(req.SelectedItemBase64)
	if err != nil {
		return resp, &StepError{Step: "선택한 옷 이미지 읽기", Err: err}
	}

	recommendations, err := s.stylist.ShopKeywords(ctx, png, req.ItemType, req.Aesthetic, req.PersonalColor)
	if err != nil {
		return resp, wrapModelError("쇼핑 키워드 추천", err)
	}

	resp.Success = true
	resp.Recommendations = recommendations
	return resp, nil
}

func (s *StylingService) preprocess(ctx context.Context, raw []byte, contentType string) (*imaging.Processed, error) {
	processed, err := s.preprocessor.Process(ctx, raw, contentType)
	if err != nil {
		if errors.Is(err, imaging.ErrNotImage) {
			return nil, err
		}
		return nil, &StepError{Step: "이미지 처리", Err: err}
	}
	return processed, nil
}

func (s *StylingService) trendContext(ctx context.Context) string {
	if s.trends == nil {
		return trends.DefaultSummary
	}
	return s.trends.Summary(ctx)
}

// upload hosts png off the request goroutine. Any failure yields a nil URL.
func (s *StylingService) upload(ctx context.Context, png []byte) *string {
	if s.store == nil {
		return nil
	}
	logger := zerolog.Ctx(ctx)

	type result struct {
		url string
		err error
	}
	done := make(chan result, 1)
	go func() {
		url, err := s.store.UploadPNG(ctx, png)
		done <- result{url: url, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			logger.Warn().Err(r.err).Msg("wardrobe image upload failed, returning base64 only")
			return nil
		}
		return &r.url
	case <-ctx.Done():
		logger.Warn().Err(ctx.Err()).Msg("wardrobe image upload abandoned")
		return nil
	}
}

// wrapModelError keeps parse failures distinguishable from failed calls.
func wrapModelError(step string, err error) error {
	var parseErr *jsonx.ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &StepError{Step: step, Err: err}
}
