package tropo

import (
	"context"
	"encoding/xml"
	"net/url"
	"strings"

	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	pkgError "github.com/dfjacobs/tropo-gateway/pkg/error"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ScriptEngine is the scripting collaborator that knows how to open a new
// session on the platform with a token and a parameter map.
type ScriptEngine interface {
	CreateSession(ctx context.Context, token string, params map[string]string) (*domainSession.SessionHandle, error)
}

// CreateSession opens a new outbound session. A nil parameter map is
// replaced by an empty one before delegation, so the collaborator always
// receives a real mapping.
func (c *Client) CreateSession(ctx context.Context, params map[string]string) (*domainSession.SessionHandle, error) {
	if err := c.validateToken(); err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]string{}
	}

	handle, err := c.engine.CreateSession(ctx, c.token, params)
	if err != nil {
		return nil, err
	}
	if handle.Ref == "" {
		handle.Ref = uuid.NewString()
	}
	return handle, nil
}

// restScriptEngine is the default collaborator: it calls the platform's
// session endpoint directly and decodes the XML session document.
type restScriptEngine struct {
	http    *resty.Client
	baseURL string
}

func (e *restScriptEngine) CreateSession(ctx context.Context, token string, params map[string]string) (*domainSession.SessionHandle, error) {
	query := url.Values{}
	query.Set("action", "create")
	query.Set("token", token)
	for key, value := range params {
		query.Set(key, value)
	}

	resp, err := e.http.R().SetContext(ctx).Get(e.baseURL + "/sessions?" + query.Encode())
	if err != nil {
		return nil, &pkgError.TransportError{Op: "create session", Cause: err}
	}

	raw := resp.RawBody()
	if raw == nil {
		return nil, pkgError.MalformedResponseError("session response has no body")
	}
	defer raw.Close()

	var payload struct {
		XMLName xml.Name `xml:"session"`
		Success string   `xml:"success"`
		Token   string   `xml:"token"`
		ID      string   `xml:"id"`
	}
	if err := xml.NewDecoder(raw).Decode(&payload); err != nil {
		return nil, pkgError.MalformedResponseError("session response is not well-formed xml: " + err.Error())
	}

	return &domainSession.SessionHandle{
		ID:      strings.TrimSpace(payload.ID),
		Token:   strings.TrimSpace(payload.Token),
		Success: strings.EqualFold(strings.TrimSpace(payload.Success), "true"),
	}, nil
}
