package core

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultTokenExpiringSoonWindow = 5 * time.Minute
	DefaultRefreshLeadWindow       = 5 * time.Minute
)

// CredentialTokenState captures the token lifecycle flags derived from the
// stored credential.
type CredentialTokenState struct {
	ExpiresAt       *time.Time
	HasAccessToken  bool
	HasRefreshToken bool
	CanAutoRefresh  bool
	IsExpired       bool
	IsExpiringSoon  bool
}

// EnsureFreshResult reports the resolved credential and whether a proactive
// refresh happened.
type EnsureFreshResult struct {
	Credential       Credential
	State            CredentialTokenState
	RefreshAttempted bool
	Refreshed        bool
}

// ResolveTokenState evaluates expiry and refreshability flags for a credential.
func ResolveTokenState(now time.Time, credential Credential, expiringSoonWindow time.Duration) CredentialTokenState {
	if now.IsZero() {
		now = time.Now().UTC()
	} else {
		now = now.UTC()
	}
	if expiringSoonWindow <= 0 {
		expiringSoonWindow = DefaultTokenExpiringSoonWindow
	}

	state := CredentialTokenState{
		HasAccessToken:  credential.HasAccessToken(),
		HasRefreshToken: credential.HasRefreshToken(),
		CanAutoRefresh:  credential.HasRefreshToken(),
	}
	if credential.ExpiresAt == nil {
		return state
	}
	expiresAt := credential.ExpiresAt.UTC()
	state.ExpiresAt = &expiresAt
	if !expiresAt.After(now) {
		state.IsExpired = true
		return state
	}
	state.IsExpiringSoon = !expiresAt.After(now.Add(expiringSoonWindow))
	return state
}

// ShouldRefresh returns true when a proactive refresh should run before the
// next request goes out.
func ShouldRefresh(now time.Time, state CredentialTokenState, refreshLeadWindow time.Duration) bool {
	if !state.CanAutoRefresh {
		return false
	}
	if !state.HasAccessToken {
		return true
	}
	if state.ExpiresAt == nil {
		return false
	}
	if refreshLeadWindow <= 0 {
		refreshLeadWindow = DefaultRefreshLeadWindow
	}
	if now.IsZero() {
		now = time.Now().UTC()
	} else {
		now = now.UTC()
	}
	return !state.ExpiresAt.UTC().After(now.Add(refreshLeadWindow))
}

// EnsureFresh refreshes the stored credential ahead of expiry when the
// backend advertised a lifetime. Reactive 401 recovery still covers backends
// that do not.
func (c *Client) EnsureFresh(ctx context.Context) (EnsureFreshResult, error) {
	if c == nil {
		return EnsureFreshResult{}, fmt.Errorf("core: client is nil")
	}

	cred, err := c.credentials.Load(ctx)
	if err != nil {
		return EnsureFreshResult{}, c.mapError(err)
	}

	now := time.Now().UTC()
	state := ResolveTokenState(now, cred, DefaultTokenExpiringSoonWindow)
	result := EnsureFreshResult{Credential: cred, State: state}

	if !ShouldRefresh(now, state, c.config.RefreshLeadWindow) {
		return result, nil
	}

	result.RefreshAttempted = true
	refreshed, err := c.RefreshSession(ctx)
	if err != nil {
		return result, err
	}
	result.Credential = refreshed
	result.State = ResolveTokenState(time.Now().UTC(), refreshed, DefaultTokenExpiringSoonWindow)
	result.Refreshed = true
	return result, nil
}
