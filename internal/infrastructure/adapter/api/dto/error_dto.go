package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Balance and TopUpURL are set only for insufficient balance rejections
	Balance  *int64 `json:"balance,omitempty"`
	TopUpURL string `json:"topUpUrl,omitempty"`
}
