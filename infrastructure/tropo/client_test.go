package tropo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	pkgError "github.com/dfjacobs/tropo-gateway/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

func TestSignalURL(t *testing.T) {
	client := NewClient("token-1", "https://api.tropo.com/1.0", testTimeout)

	tests := []struct {
		name      string
		sessionID string
		event     string
		want      string
	}{
		{
			name:      "default event when omitted",
			sessionID: "abc123",
			event:     "",
			want:      "https://api.tropo.com/1.0/sessions/abc123/signals?action=signal&value=continue",
		},
		{
			name:      "explicit event",
			sessionID: "abc123",
			event:     "exit",
			want:      "https://api.tropo.com/1.0/sessions/abc123/signals?action=signal&value=exit",
		},
		{
			name:      "values substituted verbatim without escaping",
			sessionID: "id with space",
			event:     "go now?",
			want:      "https://api.tropo.com/1.0/sessions/id with space/signals?action=signal&value=go now?",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, client.SignalURL(tc.sessionID, tc.event))
		})
	}
}

func TestSignalURLTrimsTrailingSlashFromBase(t *testing.T) {
	client := NewClient("token-1", "https://api.tropo.com/1.0/", testTimeout)
	assert.Equal(t,
		"https://api.tropo.com/1.0/sessions/abc123/signals?action=signal&value=continue",
		client.SignalURL("abc123", ""))
}

func TestSignalReturnsPlatformStatus(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<signal><status>OK</status></signal>`))
	}))
	defer server.Close()

	client := NewClient("token-1", server.URL, testTimeout)

	status, err := client.Signal(context.Background(), "abc123", "")
	require.NoError(t, err)
	assert.Equal(t, "OK", status)
	assert.Equal(t, "/sessions/abc123/signals", gotPath)
	assert.Equal(t, "action=signal&value=continue", gotQuery)
}

func TestSignalMissingTokenFailsBeforeNetworkCall(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	for _, token := range []string{"", "   ", "\t\n"} {
		client := NewClient(token, server.URL, testTimeout)

		_, err := client.Signal(context.Background(), "abc123", "continue")
		require.Error(t, err)

		var missing pkgError.MissingCredentialError
		assert.True(t, errors.As(err, &missing), "expected MissingCredentialError, got %T", err)
	}

	assert.Equal(t, int32(0), requests.Load(), "no HTTP request may be attempted without a token")
}

func TestSignalMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<signal><reason>no status here</reason></signal>`))
	}))
	defer server.Close()

	client := NewClient("token-1", server.URL, testTimeout)

	_, err := client.Signal(context.Background(), "abc123", "continue")
	require.Error(t, err)

	var malformed pkgError.MalformedResponseError
	assert.True(t, errors.As(err, &malformed), "expected MalformedResponseError, got %T", err)
}

func TestSignalTransportFailure(t *testing.T) {
	// Nothing listens here; the dial fails and must propagate untouched.
	client := NewClient("token-1", "http://127.0.0.1:1", testTimeout)

	_, err := client.Signal(context.Background(), "abc123", "continue")
	require.Error(t, err)

	var transport *pkgError.TransportError
	require.True(t, errors.As(err, &transport), "expected TransportError, got %T", err)
	assert.Error(t, transport.Unwrap())
}

func TestSignalAsyncMatchesBlockingVariant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<signal><status>QUEUED</status></signal>`))
	}))
	defer server.Close()

	client := NewClient("token-1", server.URL, testTimeout)
	ctx := context.Background()

	blocking, blockingErr := client.Signal(ctx, "abc123", "continue")
	outcome := <-client.SignalAsync(ctx, "abc123", "continue")

	require.NoError(t, blockingErr)
	require.NoError(t, outcome.Err)
	assert.Equal(t, blocking, outcome.Status)
}

func TestSignalAsyncMatchesBlockingVariantOnFailure(t *testing.T) {
	client := NewClient("token-1", "http://127.0.0.1:1", testTimeout)
	ctx := context.Background()

	_, blockingErr := client.Signal(ctx, "abc123", "continue")
	outcome := <-client.SignalAsync(ctx, "abc123", "continue")

	var blockingTransport, asyncTransport *pkgError.TransportError
	require.True(t, errors.As(blockingErr, &blockingTransport))
	require.True(t, errors.As(outcome.Err, &asyncTransport))
}

type fakeScriptEngine struct {
	gotToken  string
	gotParams map[string]string
	calls     int
	handle    *domainSession.SessionHandle
	err       error
}

func (f *fakeScriptEngine) CreateSession(_ context.Context, token string, params map[string]string) (*domainSession.SessionHandle, error) {
	f.calls++
	f.gotToken = token
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.handle, nil
}

func TestCreateSessionDelegatesWithEmptyMapWhenNil(t *testing.T) {
	engine := &fakeScriptEngine{handle: &domainSession.SessionHandle{ID: "sess-1", Success: true}}

	client := NewClient("token-1", "https://api.tropo.com/1.0", testTimeout)
	client.SetScriptEngine(engine)

	handle, err := client.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	require.NotNil(t, engine.gotParams, "collaborator must receive a real mapping, never nil")
	assert.Empty(t, engine.gotParams)
	assert.Equal(t, "token-1", engine.gotToken)
	assert.Equal(t, "sess-1", handle.ID)
	assert.NotEmpty(t, handle.Ref, "handle gets a local reference")
}

func TestCreateSessionMissingToken(t *testing.T) {
	engine := &fakeScriptEngine{handle: &domainSession.SessionHandle{}}

	client := NewClient("  ", "https://api.tropo.com/1.0", testTimeout)
	client.SetScriptEngine(engine)

	_, err := client.CreateSession(context.Background(), map[string]string{"numberToDial": "14155550100"})
	require.Error(t, err)

	var missing pkgError.MissingCredentialError
	assert.True(t, errors.As(err, &missing))
	assert.Zero(t, engine.calls, "collaborator must not be invoked without a token")
}

func TestRestScriptEngineCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/sessions", r.URL.Path)
		assert.Equal(t, "create", q.Get("action"))
		assert.Equal(t, "token-1", q.Get("token"))
		assert.Equal(t, "14155550100", q.Get("numberToDial"))

		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<session><success>true</success><token>token-1</token><id>4a57f0b0</id></session>`))
	}))
	defer server.Close()

	client := NewClient("token-1", server.URL, testTimeout)

	handle, err := client.CreateSession(context.Background(), map[string]string{"numberToDial": "14155550100"})
	require.NoError(t, err)
	assert.True(t, handle.Success)
	assert.Equal(t, "4a57f0b0", handle.ID)
	assert.Equal(t, "token-1", handle.Token)
	assert.NotEmpty(t, handle.Ref)
}

func TestRestScriptEngineMalformedSessionDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not xml`))
	}))
	defer server.Close()

	client := NewClient("token-1", server.URL, testTimeout)

	_, err := client.CreateSession(context.Background(), nil)
	require.Error(t, err)

	var malformed pkgError.MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
}
