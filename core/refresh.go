package core

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// refreshOutcome is the shared result of one refresh window: every caller
// suspended behind the in-flight refresh observes the same credential or the
// same error.
type refreshOutcome struct {
	credential Credential
	err        error
}

// refreshCoordinator enforces the single-flight invariant: at most one token
// refresh is in flight process-wide. Callers that arrive while a refresh is
// running are queued and drained uniformly when it settles. The in-progress
// flag is cleared before the queue is drained so a 401 arriving mid-drain
// starts a fresh window instead of joining a settled one.
type refreshCoordinator struct {
	mu       sync.Mutex
	inFlight bool
	waiters  []chan refreshOutcome
}

func newRefreshCoordinator() *refreshCoordinator {
	return &refreshCoordinator{}
}

// awaitOrTrigger either elects the caller as the refresher (running fn once)
// or suspends it until the in-flight refresh settles. The leader return
// reports which role the caller played.
func (rc *refreshCoordinator) awaitOrTrigger(
	ctx context.Context,
	fn func(ctx context.Context) (Credential, error),
) (outcome refreshOutcome, leader bool) {
	rc.mu.Lock()
	if rc.inFlight {
		waiter := make(chan refreshOutcome, 1)
		rc.waiters = append(rc.waiters, waiter)
		rc.mu.Unlock()

		select {
		case out := <-waiter:
			return out, false
		case <-ctx.Done():
			return refreshOutcome{err: ctx.Err()}, false
		}
	}
	rc.inFlight = true
	rc.mu.Unlock()

	cred, err := fn(ctx)
	out := refreshOutcome{credential: cred, err: err}
	rc.settle(out)
	return out, true
}

func (rc *refreshCoordinator) settle(out refreshOutcome) {
	rc.mu.Lock()
	rc.inFlight = false
	waiters := rc.waiters
	rc.waiters = nil
	rc.mu.Unlock()

	for _, waiter := range waiters {
		waiter <- out
	}
}

// refreshRequestBody is the wire shape of the refresh call.
type refreshRequestBody struct {
	RefreshToken string `json:"refresh_token"`
}

// performRefresh exchanges the stored refresh token for a new token pair. It
// talks to the transport adapter directly so a failing refresh can never
// recurse into the recovery protocol. It has no teardown side effects; the
// leader handles those after the queue has drained.
func (c *Client) performRefresh(ctx context.Context) (Credential, error) {
	cred, err := c.credentials.Load(ctx)
	if err != nil {
		return Credential{}, c.mapError(err)
	}
	if !cred.HasRefreshToken() {
		return Credential{}, newClientError(
			"core: session expired: no refresh token available",
			goerrors.CategoryAuth,
			ClientErrorSessionExpired,
		)
	}

	body, err := json.Marshal(refreshRequestBody{RefreshToken: cred.RefreshToken})
	if err != nil {
		return Credential{}, c.mapError(err)
	}

	headers := map[string]string{
		HeaderContentType: ContentTypeJSON,
		HeaderAccept:      ContentTypeJSON,
	}
	if sessionID, sessionErr := c.session.Ensure(ctx); sessionErr == nil && sessionID != "" {
		headers[HeaderSessionID] = sessionID
	}

	res, err := c.adapter.Do(ctx, TransportRequest{
		Method:  http.MethodPost,
		URL:     c.endpoint(PathRefresh),
		Headers: headers,
		Body:    body,
		Timeout: c.config.RequestTimeout,
	})
	if err != nil {
		return Credential{}, c.mapError(err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return Credential{}, responseError(res.StatusCode, res.Body, http.MethodPost, PathRefresh)
	}

	envelope := Envelope{}
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return Credential{}, newClientError(
			"core: refresh response is not a valid envelope",
			goerrors.CategoryExternal,
			ClientErrorServerFailure,
		).WithMetadata(map[string]any{"path": PathRefresh})
	}
	payload := tokenPayload{}
	if err := envelope.DecodeData(&payload); err != nil {
		return Credential{}, c.mapError(err)
	}
	refreshed, err := payload.toCredential(time.Now())
	if err != nil {
		return Credential{}, c.mapError(err)
	}

	// Overwrite wholesale; partial token updates are never valid.
	if err := c.credentials.Save(ctx, refreshed); err != nil {
		return Credential{}, c.mapError(err)
	}
	if err := c.session.Discard(ctx); err != nil {
		c.logError(ctx, "discard guest session after refresh", map[string]any{"error": err.Error()})
	}
	return refreshed, nil
}

// RefreshSession forces a token refresh through the single-flight
// coordinator. Concurrent callers share one refresh; an unrecoverable
// failure tears the local session down.
func (c *Client) RefreshSession(ctx context.Context) (Credential, error) {
	if c == nil {
		return Credential{}, goerrors.New("core: client is nil", goerrors.CategoryInternal)
	}
	startedAt := time.Now()
	outcome, leader := c.coordinator.awaitOrTrigger(ctx, c.performRefresh)
	if leader {
		c.observeOperation(ctx, startedAt, "session_refresh", outcome.err, map[string]any{})
		if outcome.err != nil {
			c.forceLogout(ctx, "token refresh failed")
		}
	}
	if outcome.err != nil {
		return Credential{}, c.mapError(outcome.err)
	}
	return outcome.credential, nil
}

// forceLogout clears every piece of local session state and sends the user
// back to the login entry point.
func (c *Client) forceLogout(ctx context.Context, reason string) {
	if err := c.credentials.Clear(ctx); err != nil {
		c.logError(ctx, "clear credentials on forced logout", map[string]any{"error": err.Error()})
	}
	if err := c.session.Discard(ctx); err != nil {
		c.logError(ctx, "clear guest session on forced logout", map[string]any{"error": err.Error()})
	}
	c.logInfo(ctx, "session terminated", map[string]any{"reason": reason})
	c.redirector.RedirectToLogin(ctx, reason)
}
