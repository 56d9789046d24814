package constant

// User roles accepted at login. A number keeps the role it registered with.
const (
	RoleCustomer  = "customer"
	RoleCollector = "collector"
	RoleAdmin     = "admin"
)

type contextKey string

const (
	// ClaimsKey holds the verified session claims for the request.
	ClaimsKey contextKey = "session_claims"
	// AuthTokenKey holds the raw bearer token the claims were parsed from.
	AuthTokenKey contextKey = "auth_token"
)
