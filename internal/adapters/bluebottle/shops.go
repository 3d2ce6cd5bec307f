package bluebottle

import (
	"coffee-finder-service/internal/domain"
	"coffee-finder-service/internal/platform/obs"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListShops fetches the shop list, passing token as a query parameter.
// Shops come back in catalog order.
func (c *Client) ListShops(ctx context.Context, token string) (_ []domain.CoffeeShop, err error) {
	defer obs.Time(ctx, "bluebottle.ListShops")(&err)

	endpoint, err := c.shopsURL(token)
	if err != nil {
		return nil, domain.WrapError(domain.KindGenericError, "build coffee shops url", err)
	}

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.WrapError(domain.KindGenericError, "build coffee shops request", err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.WrapError(domain.KindTimeout, "fetch coffee shops", err)
		}
		return nil, domain.WrapError(domain.KindNetworkFailure, "fetch coffee shops", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.WrapError(statusKind(resp.StatusCode), statusMessage(resp.StatusCode), statusError(resp))
	}

	var shops []domain.CoffeeShop
	if err := json.NewDecoder(resp.Body).Decode(&shops); err != nil {
		return nil, domain.WrapError(domain.KindGenericError, "decode coffee shops", err)
	}

	if shops == nil {
		shops = []domain.CoffeeShop{}
	}

	return shops, nil
}

func (c *Client) shopsURL(token string) (string, error) {
	u, err := url.Parse(c.catalogURL)
	if err != nil {
		return "", fmt.Errorf("parse catalog url: %w", err)
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
