package core

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// Client is the resilient storefront API client. Every outgoing request gets
// the bearer token (when present) and the guest session header attached;
// expired-token failures are recovered transparently at most once per
// logical request; non-recoverable failures are classified and broadcast.
type Client struct {
	config          Config
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorFactory    ErrorFactory
	errorMapper     ErrorMapper
	adapter         TransportAdapter
	credentials     CredentialStore
	sessionStore    SessionStore
	session         *SessionManager
	notifier        Notifier
	redirector      LoginRedirector
	coordinator     *refreshCoordinator

	configProvider    ConfigProvider
	optionsResolver   OptionsResolver
	persistenceClient any
	repositoryFactory any
}

// ClientDependencies exposes the resolved collaborators so downstream
// composition layers can reuse them.
type ClientDependencies struct {
	Logger            Logger
	LoggerProvider    LoggerProvider
	MetricsRecorder   MetricsRecorder
	ErrorFactory      ErrorFactory
	ErrorMapper       ErrorMapper
	TransportAdapter  TransportAdapter
	CredentialStore   CredentialStore
	SessionStore      SessionStore
	Notifier          Notifier
	LoginRedirector   LoginRedirector
	ConfigProvider    ConfigProvider
	OptionsResolver   OptionsResolver
	PersistenceClient any
	RepositoryFactory any
}

// requestSpec carries one logical request through the pipeline, including
// its replay. authAttached records whether a bearer token went out with the
// last transmission; only those requests qualify for refresh recovery.
type requestSpec struct {
	method       string
	path         string
	headers      map[string]string
	query        map[string]string
	body         []byte
	contentType  string
	timeout      time.Duration
	authAttached bool
}

// callState is the per-request execution context for the retry-once bound.
type callState struct {
	retried bool
}

type RequestOption func(*requestSpec)

func WithQuery(params map[string]string) RequestOption {
	return func(spec *requestSpec) {
		for key, value := range params {
			if strings.TrimSpace(key) == "" {
				continue
			}
			if spec.query == nil {
				spec.query = map[string]string{}
			}
			spec.query[key] = value
		}
	}
}

func WithQueryParam(key string, value string) RequestOption {
	return WithQuery(map[string]string{key: value})
}

func WithHeader(key string, value string) RequestOption {
	return func(spec *requestSpec) {
		if strings.TrimSpace(key) == "" {
			return
		}
		if spec.headers == nil {
			spec.headers = map[string]string{}
		}
		spec.headers[key] = value
	}
}

func WithTimeout(timeout time.Duration) RequestOption {
	return func(spec *requestSpec) {
		if timeout > 0 {
			spec.timeout = timeout
		}
	}
}

// WithRawBody bypasses JSON content negotiation for multipart or binary
// payloads; the provided content type is sent as-is.
func WithRawBody(contentType string, body []byte) RequestOption {
	return func(spec *requestSpec) {
		spec.contentType = strings.TrimSpace(contentType)
		spec.body = body
	}
}

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (Envelope, error) {
	return c.Request(ctx, http.MethodGet, path, nil, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (Envelope, error) {
	return c.Request(ctx, http.MethodPost, path, body, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (Envelope, error) {
	return c.Request(ctx, http.MethodPut, path, body, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (Envelope, error) {
	return c.Request(ctx, http.MethodPatch, path, body, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (Envelope, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, opts...)
}

// Request issues one logical request and resolves with the backend's
// envelope or the mapped failure. Side effects (refresh replay, broadcast,
// forced logout) are layered around that resolution, never replacing it.
func (c *Client) Request(
	ctx context.Context,
	method string,
	path string,
	body any,
	opts ...RequestOption,
) (Envelope, error) {
	if c == nil {
		return Envelope{}, goerrors.New("core: client is nil", goerrors.CategoryInternal)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	method = strings.TrimSpace(strings.ToUpper(method))
	if method == "" {
		method = http.MethodGet
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Envelope{}, newClientError("core: request path is required", goerrors.CategoryBadInput, ClientErrorBadInput)
	}

	spec := &requestSpec{method: method, path: path}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(spec)
	}
	if body != nil && len(spec.body) == 0 {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Envelope{}, newClientError(
				"core: encode request body: "+err.Error(),
				goerrors.CategoryBadInput,
				ClientErrorBadInput,
			)
		}
		spec.body = encoded
		if spec.contentType == "" {
			spec.contentType = ContentTypeJSON
		}
	}

	startedAt := time.Now()
	state := &callState{}
	envelope, err := c.send(ctx, spec, state)
	c.observeOperation(ctx, startedAt, "request", err, map[string]any{
		"method":  method,
		"path":    path,
		"retried": state.retried,
	})
	return envelope, err
}

func (c *Client) send(ctx context.Context, spec *requestSpec, state *callState) (Envelope, error) {
	res, err := c.dispatch(ctx, spec)
	if err != nil {
		mapped := c.mapError(err)
		c.broadcast(ctx, mapped)
		return Envelope{}, mapped
	}

	if res.StatusCode >= http.StatusBadRequest {
		failure := responseError(res.StatusCode, res.Body, spec.method, spec.path)
		if res.StatusCode == http.StatusUnauthorized && spec.authAttached && !state.retried {
			return c.recoverAuth(ctx, spec, state, failure)
		}
		c.broadcast(ctx, failure)
		return Envelope{}, failure
	}

	return parseEnvelope(res)
}

// recoverAuth runs the authentication-failure recovery protocol for a
// request that has not been replayed yet.
func (c *Client) recoverAuth(
	ctx context.Context,
	spec *requestSpec,
	state *callState,
	original *goerrors.Error,
) (Envelope, error) {
	cred, err := c.credentials.Load(ctx)
	if err != nil {
		return Envelope{}, c.mapError(err)
	}
	if !cred.HasRefreshToken() {
		// Nothing to refresh with: tear the session down and surface the
		// original failure untouched.
		c.forceLogout(ctx, "authentication failed with no refresh token")
		return Envelope{}, original
	}

	outcome, leader := c.coordinator.awaitOrTrigger(ctx, c.performRefresh)
	if leader && outcome.err != nil {
		c.forceLogout(ctx, "token refresh failed")
	}
	if outcome.err != nil {
		return Envelope{}, c.mapError(outcome.err)
	}

	state.retried = true
	return c.send(ctx, spec, state)
}

// dispatch attaches credentials and the guest session header, then executes
// the request through the transport adapter.
func (c *Client) dispatch(ctx context.Context, spec *requestSpec) (TransportResponse, error) {
	headers := map[string]string{HeaderAccept: ContentTypeJSON}
	if spec.contentType != "" {
		headers[HeaderContentType] = spec.contentType
	}

	cred, err := c.credentials.Load(ctx)
	if err != nil {
		return TransportResponse{}, err
	}
	spec.authAttached = false
	if cred.HasAccessToken() {
		headers[HeaderAuthorization] = "Bearer " + strings.TrimSpace(cred.AccessToken)
		spec.authAttached = true
	}

	sessionID, err := c.session.Ensure(ctx)
	if err != nil {
		return TransportResponse{}, err
	}
	headers[HeaderSessionID] = sessionID

	for key, value := range spec.headers {
		headers[key] = value
	}

	timeout := spec.timeout
	if timeout <= 0 {
		timeout = c.config.RequestTimeout
	}

	return c.adapter.Do(ctx, TransportRequest{
		Method:  spec.method,
		URL:     c.endpoint(spec.path),
		Headers: headers,
		Query:   spec.query,
		Body:    spec.body,
		Timeout: timeout,
	})
}

func (c *Client) endpoint(path string) string {
	base := strings.TrimRight(strings.TrimSpace(c.config.BaseURL), "/")
	root := strings.TrimSpace(c.config.APIRoot)
	if root != "" {
		root = "/" + strings.Trim(root, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + root + path
}

func (c *Client) broadcast(ctx context.Context, err *goerrors.Error) {
	notification, ok := notificationFor(err)
	if !ok {
		return
	}
	if c.notifier != nil {
		c.notifier.Publish(ctx, notification)
	}
	c.recordCounter(ctx, "storefront.notifications.total", 1, map[string]string{
		"status": strconv.Itoa(notification.Status),
	})
}

func (c *Client) mapError(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if c == nil || c.errorMapper == nil {
		return clientErrorMapper(err)
	}
	return c.errorMapper(err)
}

func parseEnvelope(res TransportResponse) (Envelope, error) {
	if len(res.Body) == 0 {
		return Envelope{Success: true}, nil
	}
	envelope := Envelope{}
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return Envelope{}, goerrors.Wrap(err, goerrors.CategoryExternal, "core: response is not a valid envelope").
			WithCode(res.StatusCode).
			WithTextCode(ClientErrorServerFailure)
	}
	return envelope, nil
}

// Config returns the resolved client configuration.
func (c *Client) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.config
}

// Notifier exposes the configured notification sink so hosts can subscribe
// when the default broadcaster is in use.
func (c *Client) Notifier() Notifier {
	if c == nil {
		return nil
	}
	return c.notifier
}
