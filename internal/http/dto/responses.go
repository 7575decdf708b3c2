package dto

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// ListData wraps collection payloads with their count.
type ListData struct {
	Items any `json:"items"`
	Total int `json:"total"`
}
