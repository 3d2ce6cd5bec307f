package bluebottle

import (
	"coffee-finder-service/internal/domain"
	"coffee-finder-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Token requests a fresh access token. Every failure, including a missing
// token in an otherwise successful response, is reported as NetworkFailure
// so callers never go on to query the catalog with an unusable token.
func (c *Client) Token(ctx context.Context) (_ string, err error) {
	defer obs.Time(ctx, "bluebottle.Token")(&err)

	req, err := c.newRequest(ctx, http.MethodPost, c.tokenURL, nil)
	if err != nil {
		return "", domain.WrapError(domain.KindNetworkFailure, "build token request", err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return "", domain.WrapError(domain.KindNetworkFailure, "fetch token", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domain.WrapError(domain.KindNetworkFailure, "fetch token", statusError(resp))
	}

	var decoded tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", domain.WrapError(domain.KindNetworkFailure, "decode token response", err)
	}

	if decoded.Token == "" {
		return "", domain.WrapError(domain.KindNetworkFailure, "decode token response", errors.New("token field is empty"))
	}

	return decoded.Token, nil
}
