// Package stylist turns vision-model output into typed styling results.
// Every method makes a single model call and never retries; model output is
// parsed strictly and shape violations come back as *jsonx.ParseError.
package stylist

import (
	"context"
	"strings"

	"core-d-backend/internal/fashion"
	"core-d-backend/internal/gemini"
	"core-d-backend/internal/jsonx"
	"core-d-backend/internal/models"
	"core-d-backend/internal/shopping"

	"github.com/rs/zerolog"
)

// SelectedID is the identifier the selected item carries in the wardrobe
// prompt. It is never a valid recommendation.
const SelectedID = "selected"

const (
	maxCoordinations = 3
	maxShopItems     = 3
)

// Garment is a decoded wardrobe item ready to be attached to a prompt.
type Garment struct {
	ID       string
	ItemType string
	PNG      []byte
}

type Stylist struct {
	model           gemini.Generator
	defaultItemType fashion.ItemType
}

func New(model gemini.Generator, defaultItemType fashion.ItemType) *Stylist {
	return &Stylist{model: model, defaultItemType: defaultItemType}
}

// Classify asks the model for the garment's item type. Unparseable answers
// and unknown labels fall back to the configured default; only a failed
// model call is an error.
func (s *Stylist) Classify(ctx context.Context, png []byte) (fashion.ItemType, error) {
	text, err := s.model.Generate(ctx, classifyPrompt, png)
	if err != nil {
		return "", err
	}

	var out struct {
		ItemType *string `json:"item_type"`
	}
	if err := jsonx.Decode(text, jsonx.Object, &out); err != nil || out.ItemType == nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("raw", text).
			Str("fallback", string(s.defaultItemType)).
			Msg("classification unparseable, using default item type")
		return s.defaultItemType, nil
	}
	return fashion.NormalizeItemType(*out.ItemType, s.defaultItemType), nil
}

// Recommend asks for complementary garments for an item of the given type.
// The result holds exactly the slots of fashion.ShapeFor(itemType).
func (s *Stylist) Recommend(ctx context.Context, png []byte, itemType fashion.ItemType, aesthetic, personalColor, trendContext string) (map[string]string, error) {
	shape := fashion.ShapeFor(itemType)
	prompt := recommendPrompt(trendContext, itemType, shape, aesthetic, personalColor)

	text, err := s.model.Generate(ctx, prompt, png)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := jsonx.Decode(text, jsonx.Object, &raw); err != nil {
		return nil, err
	}

	recommendations := make(map[string]string, len(shape.Slots))
	for _, slot := range shape.Slots {
		v, ok := raw[string(slot)]
		if !ok {
			return nil, jsonx.Invalid(text, "missing key %q", slot)
		}
		str, ok := v.(string)
		if !ok || strings.TrimSpace(str) == "" {
			return nil, jsonx.Invalid(text, "key %q must be a non-empty string", slot)
		}
		recommendations[string(slot)] = strings.TrimSpace(str)
	}
	if len(raw) != len(shape.Slots) {
		return nil, jsonx.Invalid(text, "expected keys %v, got %d keys", shape.Slots, len(raw))
	}
	return recommendations, nil
}

type coordinationReply struct {
	Coordinations *[]struct {
		RecommendedItemIDs []string `json:"recommended_item_ids"`
		StylingTip         string   `json:"styling_tip"`
	} `json:"coordinations"`
}

// Coordinate picks wardrobe items to wear with the selected one. Images are
// sent selected-first, then in wardrobe order. The model's identifiers are
// checked against wardrobe: unknown, reused and sentinel ids are dropped,
// at most one id is kept per coordination, and empty coordinations are
// removed.
func (s *Stylist) Coordinate(ctx context.Context, selected Garment, wardrobe []Garment, aesthetic, personalColor string) ([]models.Coordination, error) {
	images := make([][]byte, 0, len(wardrobe)+1)
	images = append(images, selected.PNG)
	for _, item := range wardrobe {
		images = append(images, item.PNG)
	}

	text, err := s.model.Generate(ctx, coordinatePrompt(selected.ItemType, wardrobe, aesthetic, personalColor), images...)
	if err != nil {
		return nil, err
	}

	var reply coordinationReply
	if err := jsonx.Decode(text, jsonx.Object, &reply); err != nil {
		return nil, err
	}
	if reply.Coordinations == nil {
		return nil, jsonx.Invalid(text, "missing key %q", "coordinations")
	}

	known := make(map[string]bool, len(wardrobe))
	for _, item := range wardrobe {
		known[item.ID] = true
	}

	candidates := *reply.Coordinations
	if len(candidates) > maxCoordinations {
		candidates = candidates[:maxCoordinations]
	}

	used := make(map[string]bool)
	coordinations := make([]models.Coordination, 0, len(candidates))
	for _, c := range candidates {
		var pick string
		for _, id := range c.RecommendedItemIDs {
			if id != SelectedID && known[id] && !used[id] {
				pick = id
				break
			}
		}
		if pick == "" {
			continue
		}
		used[pick] = true
		coordinations = append(coordinations, models.Coordination{
			RecommendedItemIDs: []string{pick},
			StylingTip:         c.StylingTip,
		})
	}
	return coordinations, nil
}

// ShopKeywords asks for shopping keywords that go with the item and builds
// platform search links for each. Only the first three suggestions are
// used and blank keywords are dropped.
func (s *Stylist) ShopKeywords(ctx context.Context, png []byte, itemType, aesthetic, personalColor string) ([]models.ShopRecommendation, error) {
	text, err := s.model.Generate(ctx, shopPrompt(itemType, aesthetic, personalColor), png)
	if err != nil {
		return nil, err
	}

	var items []struct {
		Keyword     string `json:"keyword"`
		Description string `json:"description"`
	}
	if err := jsonx.Decode(text, jsonx.Array, &items); err != nil {
		return nil, err
	}
	if len(items) > maxShopItems {
		items = items[:maxShopItems]
	}

	recommendations := make([]models.ShopRecommendation, 0, len(items))
	for _, item := range items {
		keyword := strings.TrimSpace(item.Keyword)
		if keyword == "" {
			continue
		}
		recommendations = append(recommendations, models.ShopRecommendation{
			Keyword:     keyword,
			Description: strings.TrimSpace(item.Description),
			SearchLinks: shopping.SearchLinks(keyword),
		})
	}
	return recommendations, nil
}
