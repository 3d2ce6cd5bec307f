package bluebottle

import (
	"coffee-finder-service/internal/ports"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	_ ports.TokenProvider = (*Client)(nil)
	_ ports.ShopCatalog   = (*Client)(nil)
)

// Applied when the caller does not supply its own http.Client.
const defaultTimeout = 10 * time.Second

// Client talks to the coffee shop catalog API. It implements both
// ports.TokenProvider and ports.ShopCatalog.
//
// Calls are never retried: a failed round-trip surfaces immediately as a
// categorized *domain.Error. The client is safe for concurrent use.
type Client struct {
	session    *http.Client
	tokenURL   string
	catalogURL string
}

// NewClient builds a catalog client for the given endpoints.
// A nil session gets an http.Client with a 10s timeout.
func NewClient(tokenURL, catalogURL string, session *http.Client) (*Client, error) {
	if err := checkURL(tokenURL); err != nil {
		return nil, fmt.Errorf("new catalog client: token url: %w", err)
	}
	if err := checkURL(catalogURL); err != nil {
		return nil, fmt.Errorf("new catalog client: catalog url: %w", err)
	}

	if session == nil {
		session = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		session:    session,
		tokenURL:   tokenURL,
		catalogURL: catalogURL,
	}, nil
}

func checkURL(raw string) error {
	if raw == "" {
		return errors.New("must be non-empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}

	return nil
}
