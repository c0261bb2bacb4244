package dto

// ErrorResponse HTTP error body. Message carries the underlying error text
// through to the client (internal tool, not a hardening target).
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse generic mutation acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}
