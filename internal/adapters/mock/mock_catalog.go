package mock

import (
	"coffee-finder-service/internal/domain"
	"context"
	"sync"
)

// MockTokenProvider hands out a fixed token, or a fixed error.
type MockTokenProvider struct {
	mu    sync.Mutex
	token string
	err   error
	calls int
}

func NewMockTokenProvider(token string, err error) *MockTokenProvider {
	return &MockTokenProvider{token: token, err: err}
}

func (p *MockTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.token, nil
}

func (p *MockTokenProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// MockShopCatalog serves a fixed shop list to callers holding the expected token.
// An empty expected token accepts any token.
type MockShopCatalog struct {
	mu        sync.Mutex
	shops     []domain.CoffeeShop
	err       error
	want      string
	calls     int
	lastToken string
}

func NewMockShopCatalog(shops []domain.CoffeeShop, err error) *MockShopCatalog {
	return &MockShopCatalog{shops: shops, err: err}
}

// ExpectToken makes ListShops reject any other token as Unauthorized.
func (c *MockShopCatalog) ExpectToken(token string) *MockShopCatalog {
	c.want = token
	return c
}

func (c *MockShopCatalog) ListShops(ctx context.Context, token string) ([]domain.CoffeeShop, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	c.lastToken = token
	if c.err != nil {
		return nil, c.err
	}
	if c.want != "" && token != c.want {
		return nil, domain.NewError(domain.KindUnauthorized, "catalog rejected token")
	}

	out := make([]domain.CoffeeShop, len(c.shops))
	copy(out, c.shops)
	return out, nil
}

func (c *MockShopCatalog) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *MockShopCatalog) LastToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastToken
}
