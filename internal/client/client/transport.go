package client

import (
	"net/http"

	"github.com/dmitrijs2005/postboard/internal/common"
)

// authTransport adds the bearer token to every request it forwards.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := ""
	if t.tokens != nil {
		token = t.tokens.Token()
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	return t.base.RoundTrip(r)
}
