package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Header names the client sets on every outgoing request.
const (
	HeaderAuthorization = "Authorization"
	HeaderSessionID     = "X-Session-ID"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
)

const ContentTypeJSON = "application/json"

// Backend auth endpoints, relative to the API root.
const (
	PathLogin       = "/auth/login"
	PathRegister    = "/auth/register"
	PathVerifyEmail = "/auth/verify-email"
	PathRefresh     = "/auth/refresh-token"
	PathLogout      = "/auth/logout"
	PathMe          = "/auth/me"
)

// Credential is the access/refresh token pair owned by the client process.
// ExpiresAt is optional; the backend advertises it via expires_in when it
// wants proactive refresh ahead of expiry.
type Credential struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

func (c Credential) HasAccessToken() bool {
	return strings.TrimSpace(c.AccessToken) != ""
}

func (c Credential) HasRefreshToken() bool {
	return strings.TrimSpace(c.RefreshToken) != ""
}

func (c Credential) Empty() bool {
	return !c.HasAccessToken() && !c.HasRefreshToken()
}

// Envelope is the backend's response wrapper. Data is passed through
// unopinionated; callers decode it into their own shapes.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Meta    *PageMeta       `json:"meta,omitempty"`
}

func (e Envelope) DecodeData(target any) error {
	if target == nil {
		return fmt.Errorf("core: decode target is required")
	}
	if len(e.Data) == 0 {
		return fmt.Errorf("core: response envelope has no data")
	}
	if err := json.Unmarshal(e.Data, target); err != nil {
		return fmt.Errorf("core: decode envelope data: %w", err)
	}
	return nil
}

type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Notification is the classified, user-displayable failure event broadcast
// by the client. Status is the HTTP status of the failing response, or 0
// when no response was received.
type Notification struct {
	Message string
	Status  int
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// AuthSession is the result of an operation that established credentials.
// User carries the backend's user payload untouched.
type AuthSession struct {
	Credential Credential
	User       json.RawMessage
}

// tokenPayload is the data shape returned by login/verify/refresh.
type tokenPayload struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in,omitempty"`
	User         json.RawMessage `json:"user,omitempty"`
}

func (p tokenPayload) toCredential(now time.Time) (Credential, error) {
	if strings.TrimSpace(p.AccessToken) == "" {
		return Credential{}, fmt.Errorf("core: token payload is missing access_token")
	}
	if strings.TrimSpace(p.RefreshToken) == "" {
		return Credential{}, fmt.Errorf("core: token payload is missing refresh_token")
	}
	cred := Credential{
		AccessToken:  strings.TrimSpace(p.AccessToken),
		RefreshToken: strings.TrimSpace(p.RefreshToken),
	}
	if p.ExpiresIn > 0 {
		expiresAt := now.UTC().Add(time.Duration(p.ExpiresIn) * time.Second)
		cred.ExpiresAt = &expiresAt
	}
	return cred, nil
}
