package constants

// Pagination bounds for user listing. Requested page sizes outside
// [MinPageSize, MaxPageSize] are silently coerced to DefaultPageSize.
const (
	MinPageSize     = 1
	MaxPageSize     = 20
	DefaultPageSize = 20
)

// HeaderRequestID is the correlation-id header set by the request-id
// middleware.
const HeaderRequestID = "X-Request-Id"

// ContextKeyRequestID is the gin context key holding the request id.
const ContextKeyRequestID = "request_id"
