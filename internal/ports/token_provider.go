package ports

import "context"

// Contract for acquiring the short-lived bearer token the catalog requires.
type TokenProvider interface {
	// Return an opaque access token. The format is not validated.
	Token(ctx context.Context) (string, error)
}
