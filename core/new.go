package core

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

// New builds a Client from the runtime config plus functional options.
// Configuration resolves defaults < provider-loaded < runtime; stores fall
// back to in-memory implementations unless a repository factory supplies
// durable ones.
func New(cfg Config, options ...Option) (*Client, error) {
	builder := defaultClientBuilder(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("storefront", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("storefront"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.errorFactory == nil {
		builder.errorFactory = goerrors.New
	}
	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	if strings.TrimSpace(finalConfig.BaseURL) == "" {
		return nil, mapBuildError(builder.errorMapper,
			goerrors.New("core: base_url is required", goerrors.CategoryBadInput))
	}

	if (builder.credentialStore == nil || builder.sessionStore == nil) && builder.repositoryFactory != nil {
		if storeFactory, ok := builder.repositoryFactory.(RepositoryStoreFactory); ok {
			stores, buildErr := storeFactory.BuildStores(builder.persistenceClient)
			if buildErr != nil {
				return nil, mapBuildError(builder.errorMapper, buildErr)
			}
			if stores != nil {
				if builder.credentialStore == nil {
					builder.credentialStore = stores.CredentialStore()
				}
				if builder.sessionStore == nil {
					builder.sessionStore = stores.SessionStore()
				}
			}
		} else if stores, ok := builder.repositoryFactory.(StoreProvider); ok {
			if builder.credentialStore == nil {
				builder.credentialStore = stores.CredentialStore()
			}
			if builder.sessionStore == nil {
				builder.sessionStore = stores.SessionStore()
			}
		}
	}
	if builder.credentialStore == nil {
		builder.credentialStore = NewMemoryCredentialStore()
	}
	if builder.sessionStore == nil {
		builder.sessionStore = NewMemorySessionStore()
	}
	if builder.notifier == nil {
		builder.notifier = NewBroadcaster()
	}
	if builder.redirector == nil {
		builder.redirector = NopLoginRedirector{}
	}
	if builder.adapter == nil {
		return nil, mapBuildError(builder.errorMapper,
			goerrors.New("core: transport adapter is required", goerrors.CategoryBadInput))
	}

	return &Client{
		config:            finalConfig,
		logger:            logger,
		loggerProvider:    provider,
		metricsRecorder:   builder.metricsRecorder,
		errorFactory:      builder.errorFactory,
		errorMapper:       builder.errorMapper,
		adapter:           builder.adapter,
		credentials:       builder.credentialStore,
		sessionStore:      builder.sessionStore,
		session:           NewSessionManager(builder.sessionStore),
		notifier:          builder.notifier,
		redirector:        builder.redirector,
		coordinator:       newRefreshCoordinator(),
		configProvider:    builder.configProvider,
		optionsResolver:   builder.optionsResolver,
		persistenceClient: builder.persistenceClient,
		repositoryFactory: builder.repositoryFactory,
	}, nil
}

// Setup is a convenience alias for New.
func Setup(cfg Config, options ...Option) (*Client, error) {
	return New(cfg, options...)
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (c *Client) Dependencies() ClientDependencies {
	if c == nil {
		return ClientDependencies{}
	}
	return ClientDependencies{
		Logger:            c.logger,
		LoggerProvider:    c.loggerProvider,
		MetricsRecorder:   c.metricsRecorder,
		ErrorFactory:      c.errorFactory,
		ErrorMapper:       c.errorMapper,
		TransportAdapter:  c.adapter,
		CredentialStore:   c.credentials,
		SessionStore:      c.sessionStore,
		Notifier:          c.notifier,
		LoginRedirector:   c.redirector,
		ConfigProvider:    c.configProvider,
		OptionsResolver:   c.optionsResolver,
		PersistenceClient: c.persistenceClient,
		RepositoryFactory: c.repositoryFactory,
	}
}
