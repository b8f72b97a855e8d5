package constants

// Заголовки
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderLocation      = "Location"
	HeaderRetryAfter    = "Retry-After"
	HeaderRequestID     = "X-Request-Id"
)

const (
	ContentTypeJSON = "application/json"
)
