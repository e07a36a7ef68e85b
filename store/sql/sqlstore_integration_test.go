package sqlstore_test

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"testing"
	"time"

	persistence "github.com/goliatone/go-persistence-bun"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/dev-saiful/go-storefront/core"
	storefrontmigrations "github.com/dev-saiful/go-storefront/migrations"
	sqlstore "github.com/dev-saiful/go-storefront/store/sql"
)

type testPersistenceConfig struct {
	driver string
	server string
}

func (c testPersistenceConfig) GetDebug() bool {
	return false
}

func (c testPersistenceConfig) GetDriver() string {
	return c.driver
}

func (c testPersistenceConfig) GetServer() string {
	return c.server
}

func (c testPersistenceConfig) GetPingTimeout() time.Duration {
	return time.Second
}

func (c testPersistenceConfig) GetOtelIdentifier() string {
	return "go-storefront-tests"
}

func TestMigrationSmokeApplySQLite(t *testing.T) {
	client, cleanup := newSQLiteClient(t)
	defer cleanup()

	var tableName string
	if err := client.DB().NewRaw(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
		"storefront_local_state",
	).Scan(context.Background(), &tableName); err != nil {
		t.Fatalf("query sqlite master: %v", err)
	}
	if tableName != "storefront_local_state" {
		t.Fatalf("expected storefront_local_state table, got %q", tableName)
	}
}

func TestCredentialStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client, cleanup := newSQLiteClient(t)
	defer cleanup()

	factory, err := sqlstore.NewRepositoryFactoryFromPersistence(client, "storefront")
	if err != nil {
		t.Fatalf("new repository factory: %v", err)
	}

	store := factory.CredentialStore()
	if store == nil {
		t.Fatalf("expected credential store from factory")
	}

	empty, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if empty.HasAccessToken() || empty.HasRefreshToken() {
		t.Fatalf("expected empty credential, got %#v", empty)
	}

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	if err := store.Save(ctx, core.Credential{
		AccessToken:  "tok-1",
		RefreshToken: "ref-1",
		ExpiresAt:    &expires,
	}); err != nil {
		t.Fatalf("save credential: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load credential: %v", err)
	}
	if loaded.AccessToken != "tok-1" || loaded.RefreshToken != "ref-1" {
		t.Fatalf("unexpected credential: %#v", loaded)
	}
	if loaded.ExpiresAt == nil || !loaded.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected expiry: %v", loaded.ExpiresAt)
	}

	// A rotated pair replaces the previous one.
	if err := store.Save(ctx, core.Credential{AccessToken: "tok-2", RefreshToken: "ref-2"}); err != nil {
		t.Fatalf("save rotated credential: %v", err)
	}
	rotated, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load rotated credential: %v", err)
	}
	if rotated.AccessToken != "tok-2" || rotated.RefreshToken != "ref-2" {
		t.Fatalf("unexpected rotated credential: %#v", rotated)
	}
	if rotated.ExpiresAt != nil {
		t.Fatalf("expected no expiry after rotation, got %v", rotated.ExpiresAt)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear credential: %v", err)
	}
	cleared, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load cleared credential: %v", err)
	}
	if cleared.HasAccessToken() || cleared.HasRefreshToken() {
		t.Fatalf("expected cleared credential, got %#v", cleared)
	}
}

func TestSessionStore_RoundTripAndIsolationFromCredentials(t *testing.T) {
	ctx := context.Background()
	client, cleanup := newSQLiteClient(t)
	defer cleanup()

	factory, err := sqlstore.NewRepositoryFactoryFromPersistence(client, "storefront")
	if err != nil {
		t.Fatalf("new repository factory: %v", err)
	}

	sessions := factory.SessionStore()
	credentials := factory.CredentialStore()

	id, err := sessions.Load(ctx)
	if err != nil {
		t.Fatalf("load empty session: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty session id, got %q", id)
	}

	if err := sessions.Save(ctx, "sess-1"); err != nil {
		t.Fatalf("save session: %v", err)
	}
	if err := credentials.Save(ctx, core.Credential{AccessToken: "tok-1"}); err != nil {
		t.Fatalf("save credential: %v", err)
	}

	if err := sessions.Save(ctx, "sess-2"); err != nil {
		t.Fatalf("overwrite session: %v", err)
	}
	id, err = sessions.Load(ctx)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if id != "sess-2" {
		t.Fatalf("expected rotated session id, got %q", id)
	}

	// Clearing credentials leaves the guest session untouched and vice versa.
	if err := credentials.Clear(ctx); err != nil {
		t.Fatalf("clear credentials: %v", err)
	}
	id, err = sessions.Load(ctx)
	if err != nil {
		t.Fatalf("load session after credential clear: %v", err)
	}
	if id != "sess-2" {
		t.Fatalf("expected session to survive credential clear, got %q", id)
	}

	if err := sessions.Clear(ctx); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	id, err = sessions.Load(ctx)
	if err != nil {
		t.Fatalf("load cleared session: %v", err)
	}
	if id != "" {
		t.Fatalf("expected cleared session, got %q", id)
	}
}

func TestRepositoryFactory_BuildStores(t *testing.T) {
	client, cleanup := newSQLiteClient(t)
	defer cleanup()

	t.Run("accepts bun db", func(t *testing.T) {
		factory, err := sqlstore.NewRepositoryFactoryFromDB(client.DB(), "")
		if err != nil {
			t.Fatalf("new repository factory from db: %v", err)
		}
		if factory.CredentialStore() == nil || factory.SessionStore() == nil {
			t.Fatalf("expected stores from factory")
		}
	})

	t.Run("satisfies the store factory contract", func(t *testing.T) {
		var factory core.RepositoryStoreFactory = sqlstore.NewRepositoryFactory("storefront")
		provider, err := factory.BuildStores(client)
		if err != nil {
			t.Fatalf("build stores: %v", err)
		}
		if provider.CredentialStore() == nil || provider.SessionStore() == nil {
			t.Fatalf("expected provider stores")
		}
	})

	t.Run("rejects unsupported clients", func(t *testing.T) {
		if _, err := sqlstore.NewRepositoryFactory("storefront").BuildStores(42); err == nil {
			t.Fatalf("expected unsupported persistence client error")
		}
	})
}

func newSQLiteClient(t *testing.T) (*persistence.Client, func()) {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:storefront-test-%d?mode=memory&cache=shared&_foreign_keys=on",
		time.Now().UnixNano(),
	)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := testPersistenceConfig{
		driver: "sqlite3",
		server: dsn,
	}
	client, err := persistence.New(cfg, sqlDB, sqlitedialect.New())
	if err != nil {
		_ = sqlDB.Close()
		t.Fatalf("new persistence client: %v", err)
	}

	ctx := context.Background()
	_, err = storefrontmigrations.Register(ctx, func(_ context.Context, dialect string, _ string, fsys fs.FS) error {
		if dialect != storefrontmigrations.DialectSQLite {
			return nil
		}
		client.RegisterSQLMigrations(fsys)
		return nil
	}, storefrontmigrations.WithValidationTargets(storefrontmigrations.DialectSQLite))
	if err != nil {
		_ = client.Close()
		t.Fatalf("register migrations: %v", err)
	}
	if err := client.Migrate(ctx); err != nil {
		_ = client.Close()
		t.Fatalf("migrate: %v", err)
	}

	return client, func() {
		_ = client.Close()
	}
}
