package sqlstore

import "github.com/dev-saiful/go-storefront/core"

var (
	_ core.CredentialStore        = (*CredentialStore)(nil)
	_ core.SessionStore           = (*SessionStore)(nil)
	_ core.StoreProvider          = (*RepositoryFactory)(nil)
	_ core.RepositoryStoreFactory = (*RepositoryFactory)(nil)
)
