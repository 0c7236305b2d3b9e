package common

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// User-facing messages shared across handlers
const (
	MsgNoData           = "No data provided"
	MsgInternalError    = "Something went wrong. Please try again later"
	MsgEndpointNotFound = "Endpoint not found"
	MsgServerError      = "Internal server error"
)

// NewErrorResponse creates a new error response body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
