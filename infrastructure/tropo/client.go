package tropo

import (
	"context"
	"strings"
	"time"

	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	pkgError "github.com/dfjacobs/tropo-gateway/pkg/error"
	"github.com/go-resty/resty/v2"
)

// Client talks to the Tropo session API. The token is fixed at
// construction and never reassigned, so one client can be shared across
// requests without locking.
type Client struct {
	http    *resty.Client
	baseURL string
	token   string
	engine  ScriptEngine
}

func NewClient(token, baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetDoNotParseResponse(true)

	client := &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
	}
	client.engine = &restScriptEngine{http: httpClient, baseURL: client.baseURL}
	return client
}

// SetScriptEngine swaps the session-creation collaborator. The REST-backed
// default talks to the platform directly.
func (c *Client) SetScriptEngine(engine ScriptEngine) {
	c.engine = engine
}

func (c *Client) validateToken() error {
	if strings.TrimSpace(c.token) == "" {
		return pkgError.MissingCredentialError("tropo api token is not set")
	}
	return nil
}

// SignalURL returns the URL a signal request would use, without making the
// request. Useful when a peer service performs the signal itself, e.g. the
// cross-session hangup handoff. Values are substituted verbatim; the
// platform tolerates unescaped values in this query-string shape.
func (c *Client) SignalURL(sessionID, event string) string {
	if event == "" {
		event = domainSession.DefaultEvent
	}
	return c.baseURL + "/sessions/" + sessionID + "/signals?action=signal&value=" + event
}

// Signal raises the named event on a running session and returns the
// platform-reported status. A missing response body yields the
// session.StatusError sentinel instead of an error; everything else that
// goes wrong propagates to the caller, no retries.
func (c *Client) Signal(ctx context.Context, sessionID, event string) (string, error) {
	if err := c.validateToken(); err != nil {
		return "", err
	}

	resp, err := c.http.R().SetContext(ctx).Get(c.SignalURL(sessionID, event))
	if err != nil {
		return "", &pkgError.TransportError{Op: "signal", Cause: err}
	}

	raw := resp.RawBody()
	if raw == nil {
		return domainSession.StatusError, nil
	}
	defer raw.Close()

	return parseStatus(raw)
}

// SignalAsync is Signal dispatched on its own goroutine; the caller
// receives exactly one outcome on the returned channel. Go has a single
// scheduling model, so this is a thin wrapper with the same observable
// behavior as the blocking variant.
func (c *Client) SignalAsync(ctx context.Context, sessionID, event string) <-chan domainSession.SignalOutcome {
	out := make(chan domainSession.SignalOutcome, 1)
	go func() {
		defer close(out)
		status, err := c.Signal(ctx, sessionID, event)
		out <- domainSession.SignalOutcome{Status: status, Err: err}
	}()
	return out
}
