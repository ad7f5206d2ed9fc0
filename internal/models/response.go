package models

type AnalyzeResponse struct {
	Success              bool              `json:"success"`
	ProcessedImageBase64 string            `json:"processed_image_base64,omitempty"`
	ItemType             string            `json:"item_type,omitempty"`
	Recommendations      map[string]string `json:"recommendations,omitempty"`
	Error                string            `json:"error,omitempty"`
}

type WardrobeProcessResponse struct {
	Success              bool    `json:"success"`
	ProcessedImageBase64 string  `json:"processed_image_base64,omitempty"`
	ImageURL             *string `json:"image_url"`
	ItemType             string  `json:"item_type,omitempty"`
	Error                string  `json:"error,omitempty"`
}

type Coordination struct {
	RecommendedItemIDs []string `json:"recommended_item_ids"`
	StylingTip         string   `json:"styling_tip"`
}

type ClosetCoordinateResponse struct {
	Success       bool           `json:"success"`
	Coordinations []Coordination `json:"coordinations"`
	Error         string         `json:"error,omitempty"`
}

type ShopRecommendation struct {
	Keyword     string            `json:"keyword"`
	Description string            `json:"description"`
	SearchLinks map[string]string `json:"search_links"`
}

type ShopSearchResponse struct {
	Success         bool                 `json:"success"`
	Recommendations []ShopRecommendation `json:"recommendations"`
	Error           string               `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type OptionsResponse struct {
	ItemTypes      []string `json:"item_types"`
	Aesthetics     []string `json:"aesthetics"`
	PersonalColors []string `json:"personal_colors"`
}
