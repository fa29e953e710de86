package common

const (
	// AuthorizationHeader carries the bearer token on outbound requests.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader correlates a request with client log lines.
	RequestIDHeader = "X-Request-ID"

	// TokenKey is the session repository key of the persisted token.
	TokenKey = "token"
)
