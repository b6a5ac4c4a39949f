package common

// APIResponse is the standard wrapper for all API responses.
// A successful response never carries Error and a failed one never carries Data.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Standard client-facing messages
const (
	MsgMissingFields   = "Missing required fields"
	MsgInvalidEmail    = "Invalid email address"
	MsgMessageSent     = "Message sent successfully!"
	MsgSendFailed      = "Failed to send message. Please try again."
	MsgServerError     = "Server error occurred"
	MsgProjectNotFound = "Project not found"
	MsgProjectsFailed  = "Failed to fetch projects"
	MsgTooManyRequests = "Too many requests. Please try again later."
	MsgNotFound        = "Resource not found"
	MsgRequestTooLarge = "Request body too large"
)

// MissingFieldMessage names the first missing or blank field.
func MissingFieldMessage(field string) string {
	return "Missing required field: " + field
}

// Format builds the envelope for an outcome and pairs it with a status code.
// Data is dropped on failure and errMsg is dropped on success.
func Format(success bool, data interface{}, errMsg string, status int) (APIResponse, int) {
	resp := APIResponse{Success: success}
	if success {
		resp.Data = data
	} else {
		resp.Error = errMsg
	}
	return resp, status
}

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(data interface{}) APIResponse {
	resp, _ := Format(true, data, "", 0)
	return resp
}

// NewListResponse creates a successful response carrying a collection and its size
func NewListResponse(data interface{}, count int) APIResponse {
	resp := NewSuccessResponse(data)
	resp.Count = &count
	return resp
}

// NewMessageResponse creates a new success response with a simple message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	resp, _ := Format(false, nil, message, 0)
	return resp
}
