package constants

// Context keys for validated requests
const (
	// Contact context keys
	ContextKeyContact = "contact"

	// Request context keys
	ContextKeyRequestID = "requestID"
)

// Header names
const (
	HeaderRequestID = "X-Request-ID"
)
