package core

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// Login exchanges credentials for a token pair and stores it. The guest
// session id is discarded so a fresh one gets generated for any later
// anonymous browsing.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthSession, error) {
	if c == nil {
		return AuthSession{}, goerrors.New("core: client is nil", goerrors.CategoryInternal)
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return AuthSession{}, newClientError(
			"core: email and password are required",
			goerrors.CategoryBadInput,
			ClientErrorBadInput,
		)
	}

	startedAt := time.Now()
	session, err := c.establishSession(ctx, PathLogin, req)
	c.observeOperation(ctx, startedAt, "login", err, map[string]any{"email": req.Email})
	return session, err
}

// Register creates a new account. The backend expects email verification
// before issuing tokens, so the envelope is returned untouched.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Envelope, error) {
	if c == nil {
		return Envelope{}, goerrors.New("core: client is nil", goerrors.CategoryInternal)
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return Envelope{}, newClientError(
			"core: email and password are required",
			goerrors.CategoryBadInput,
			ClientErrorBadInput,
		)
	}
	if req.Password != req.PasswordConfirmation {
		return Envelope{}, newClientError(
			"core: password confirmation mismatch",
			goerrors.CategoryBadInput,
			ClientErrorBadInput,
		)
	}

	startedAt := time.Now()
	envelope, err := c.Post(ctx, PathRegister, req)
	c.observeOperation(ctx, startedAt, "register", err, map[string]any{"email": req.Email})
	return envelope, err
}

// VerifyEmail confirms the address with the emailed token. A successful
// verification carries a token pair, so it establishes a session like login.
func (c *Client) VerifyEmail(ctx context.Context, req VerifyEmailRequest) (AuthSession, error) {
	if c == nil {
		return AuthSession{}, goerrors.New("core: client is nil", goerrors.CategoryInternal)
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Token) == "" {
		return AuthSession{}, newClientError(
			"core: email and token are required",
			goerrors.CategoryBadInput,
			ClientErrorBadInput,
		)
	}

	startedAt := time.Now()
	session, err := c.establishSession(ctx, PathVerifyEmail, req)
	c.observeOperation(ctx, startedAt, "verify_email", err, map[string]any{"email": req.Email})
	return session, err
}

// Logout tells the backend to revoke the session, then clears local state.
// The remote call is best-effort: local state is always cleared, and a
// failing revoke is logged rather than surfaced.
func (c *Client) Logout(ctx context.Context) error {
	if c == nil {
		return nil
	}
	startedAt := time.Now()

	if _, err := c.Post(ctx, PathLogout, nil); err != nil {
		c.logError(ctx, "remote logout failed", map[string]any{"error": err.Error()})
	}

	var clearErr error
	if err := c.credentials.Clear(ctx); err != nil {
		clearErr = c.mapError(err)
	}
	if err := c.session.Discard(ctx); err != nil && clearErr == nil {
		clearErr = c.mapError(err)
	}
	c.observeOperation(ctx, startedAt, "logout", clearErr, map[string]any{})
	return clearErr
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (json.RawMessage, error) {
	if c == nil {
		return nil, goerrors.New("core: client is nil", goerrors.CategoryInternal)
	}
	startedAt := time.Now()
	envelope, err := c.Get(ctx, PathMe)
	c.observeOperation(ctx, startedAt, "me", err, map[string]any{})
	if err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) establishSession(ctx context.Context, path string, payload any) (AuthSession, error) {
	envelope, err := c.Post(ctx, path, payload)
	if err != nil {
		return AuthSession{}, err
	}

	tokens := tokenPayload{}
	if err := envelope.DecodeData(&tokens); err != nil {
		return AuthSession{}, c.mapError(err)
	}
	cred, err := tokens.toCredential(time.Now())
	if err != nil {
		return AuthSession{}, c.mapError(err)
	}

	if err := c.credentials.Save(ctx, cred); err != nil {
		return AuthSession{}, c.mapError(err)
	}
	if err := c.session.Discard(ctx); err != nil {
		c.logError(ctx, "discard guest session after sign-in", map[string]any{"error": err.Error()})
	}
	return AuthSession{Credential: cred, User: tokens.User}, nil
}
