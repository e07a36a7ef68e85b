package sqlstore

import (
	"fmt"
	"strings"

	persistence "github.com/goliatone/go-persistence-bun"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/dev-saiful/go-storefront/core"
)

const defaultClientName = "storefront"

// RepositoryFactory builds the SQL-backed credential and session stores on
// top of a shared bun connection.
type RepositoryFactory struct {
	db         *bun.DB
	clientName string

	credentialStore *CredentialStore
	sessionStore    *SessionStore
}

func NewRepositoryFactory(clientName string) *RepositoryFactory {
	trimmed := strings.TrimSpace(clientName)
	if trimmed == "" {
		trimmed = defaultClientName
	}
	return &RepositoryFactory{clientName: trimmed}
}

func NewRepositoryFactoryFromPersistence(client *persistence.Client, clientName string) (*RepositoryFactory, error) {
	factory := NewRepositoryFactory(clientName)
	if _, err := factory.BuildStores(client); err != nil {
		return nil, err
	}
	return factory, nil
}

func NewRepositoryFactoryFromDB(db *bun.DB, clientName string) (*RepositoryFactory, error) {
	factory := NewRepositoryFactory(clientName)
	if _, err := factory.BuildStores(db); err != nil {
		return nil, err
	}
	return factory, nil
}

func (f *RepositoryFactory) BuildStores(persistenceClient any) (core.StoreProvider, error) {
	if f == nil {
		return nil, fmt.Errorf("sqlstore: repository factory is nil")
	}
	if f.db == nil {
		db, err := resolveBunDB(persistenceClient)
		if err != nil {
			return nil, err
		}
		f.db = db
	}
	if f.credentialStore != nil && f.sessionStore != nil {
		return f, nil
	}
	if err := f.initStores(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *RepositoryFactory) CredentialStore() core.CredentialStore {
	if f == nil {
		return nil
	}
	return f.credentialStore
}

func (f *RepositoryFactory) SessionStore() core.SessionStore {
	if f == nil {
		return nil
	}
	return f.sessionStore
}

func (f *RepositoryFactory) DB() *bun.DB {
	if f == nil {
		return nil
	}
	return f.db
}

func (f *RepositoryFactory) initStores() error {
	stateRepo := repository.NewRepository[*localStateRecord](f.db, localStateHandlers())
	if validator, ok := stateRepo.(repository.Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("sqlstore: invalid local state repository wiring: %w", err)
		}
	}

	f.credentialStore = &CredentialStore{
		db:         f.db,
		repo:       stateRepo,
		clientName: f.clientName,
	}
	f.sessionStore = &SessionStore{
		db:         f.db,
		repo:       stateRepo,
		clientName: f.clientName,
	}
	return nil
}

func resolveBunDB(candidate any) (*bun.DB, error) {
	switch typed := candidate.(type) {
	case nil:
		return nil, fmt.Errorf("sqlstore: persistence client is required")
	case *bun.DB:
		return typed, nil
	case interface{ DB() *bun.DB }:
		db := typed.DB()
		if db == nil {
			return nil, fmt.Errorf("sqlstore: persistence client returned nil bun db")
		}
		return db, nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported persistence client type %T", candidate)
	}
}
