package storefront

import (
	"github.com/dev-saiful/go-storefront/core"
	"github.com/dev-saiful/go-storefront/transport"
)

type Config = core.Config

type Option = core.Option

type Client = core.Client

type Credential = core.Credential
type Envelope = core.Envelope
type Notification = core.Notification
type AuthSession = core.AuthSession

type LoginRequest = core.LoginRequest
type RegisterRequest = core.RegisterRequest
type VerifyEmailRequest = core.VerifyEmailRequest

type CredentialStore = core.CredentialStore
type SessionStore = core.SessionStore
type Notifier = core.Notifier
type LoginRedirector = core.LoginRedirector
type TransportAdapter = core.TransportAdapter
type MetricsRecorder = core.MetricsRecorder
type StoreProvider = core.StoreProvider
type RepositoryStoreFactory = core.RepositoryStoreFactory

var (
	WithLogger            = core.WithLogger
	WithLoggerProvider    = core.WithLoggerProvider
	WithMetricsRecorder   = core.WithMetricsRecorder
	WithErrorFactory      = core.WithErrorFactory
	WithErrorMapper       = core.WithErrorMapper
	WithTransportAdapter  = core.WithTransportAdapter
	WithCredentialStore   = core.WithCredentialStore
	WithSessionStore      = core.WithSessionStore
	WithNotifier          = core.WithNotifier
	WithLoginRedirector   = core.WithLoginRedirector
	WithConfigProvider    = core.WithConfigProvider
	WithOptionsResolver   = core.WithOptionsResolver
	WithPersistenceClient = core.WithPersistenceClient
	WithRepositoryFactory = core.WithRepositoryFactory
)

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// New builds a storefront client with the REST transport as the default
// adapter. Options run after the default, so WithTransportAdapter still wins.
func New(cfg Config, opts ...Option) (*Client, error) {
	options := make([]Option, 0, len(opts)+1)
	options = append(options, core.WithTransportAdapter(transport.NewRESTAdapter(nil)))
	options = append(options, opts...)
	return core.New(cfg, options...)
}

func Setup(cfg Config, opts ...Option) (*Client, error) {
	return New(cfg, opts...)
}
