package ports

// TokenService issues and verifies signed session tokens. Verification is a
// local signature check and performs no I/O.
type TokenService interface {
	// Issue signs the given claims into a token with a fixed expiry. The
	// payload is embedded as-is; callers own any identity verification.
	Issue(claims map[string]any) (string, error)
	// Verify parses and validates a token, returning its decoded claims.
	Verify(token string) (map[string]any, error)
}
