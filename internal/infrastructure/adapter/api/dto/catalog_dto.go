package dto

// ImageRequest represents an admin's image URL update
type ImageRequest struct {
	URL string `json:"url" binding:"required"`
}
