package models

type SelectedItem struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	ItemType    string `json:"item_type" binding:"required"`
}

type WardrobeItem struct {
	ID          string `json:"id" binding:"required"`
	ImageBase64 string `json:"image_base64" binding:"required"`
	ItemType    string `json:"item_type" binding:"required"`
}

type ClosetCoordinateRequest struct {
	SelectedItem  SelectedItem   `json:"selected_item" binding:"required"`
	WardrobeItems []WardrobeItem `json:"wardrobe_items" binding:"required,dive"`
	Aesthetic     string         `json:"aesthetic" binding:"required"`
	PersonalColor string         `json:"personal_color" binding:"required"`
}

type ShopSearchRequest struct {
	SelectedItemBase64 string `json:"selected_item_base64" binding:"required"`
	ItemType           string `json:"item_type" binding:"required"`
	Aesthetic          string `json:"aesthetic" binding:"required"`
	PersonalColor      string `json:"personal_color" binding:"required"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
