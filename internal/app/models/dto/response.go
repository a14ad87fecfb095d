package dto

import "time"

// APIResponse is the envelope every endpoint returns: a success flag plus
// either data or an error detail.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-03-01T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success envelope carrying only a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes the position of a page within a listing.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"20"`
	TotalItems  int64 `json:"totalItems" example:"93"`
}

// PaginatedResponse represents a paginated list with metadata.
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
