package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/dev-saiful/go-storefront/core"
)

// CredentialStore keeps the bearer token pair in the local state table so a
// restarted client resumes the same authenticated session.
type CredentialStore struct {
	db         *bun.DB
	repo       repository.Repository[*localStateRecord]
	clientName string
}

func (s *CredentialStore) Load(ctx context.Context) (core.Credential, error) {
	if s == nil || s.repo == nil {
		return core.Credential{}, fmt.Errorf("sqlstore: credential store is not configured")
	}
	records, _, err := s.repo.List(ctx,
		repository.SelectBy("client_name", "=", s.clientName),
	)
	if err != nil {
		return core.Credential{}, err
	}

	cred := core.Credential{}
	for _, record := range records {
		if record == nil {
			continue
		}
		switch record.Key {
		case stateKeyAccessToken:
			cred.AccessToken = record.Value
			cred.ExpiresAt = record.ExpiresAt
		case stateKeyRefreshToken:
			cred.RefreshToken = record.Value
		}
	}
	return cred, nil
}

func (s *CredentialStore) Save(ctx context.Context, cred core.Credential) error {
	if s == nil || s.db == nil || s.repo == nil {
		return fmt.Errorf("sqlstore: credential store is not configured")
	}
	if !cred.HasAccessToken() {
		return fmt.Errorf("sqlstore: access token is required")
	}

	now := time.Now().UTC()
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := deleteStateKeys(ctx, tx, s.clientName, stateKeyAccessToken, stateKeyRefreshToken); err != nil {
			return err
		}
		records := []*localStateRecord{
			{
				ID:         uuid.NewString(),
				ClientName: s.clientName,
				Key:        stateKeyAccessToken,
				Value:      cred.AccessToken,
				ExpiresAt:  cred.ExpiresAt,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		}
		if cred.HasRefreshToken() {
			records = append(records, &localStateRecord{
				ID:         uuid.NewString(),
				ClientName: s.clientName,
				Key:        stateKeyRefreshToken,
				Value:      cred.RefreshToken,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
		for _, record := range records {
			if _, err := s.repo.CreateTx(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *CredentialStore) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlstore: credential store is not configured")
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return deleteStateKeys(ctx, tx, s.clientName, stateKeyAccessToken, stateKeyRefreshToken)
	})
}

func deleteStateKeys(ctx context.Context, tx bun.Tx, clientName string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}
	_, err := tx.NewDelete().
		Model((*localStateRecord)(nil)).
		Where("client_name = ?", clientName).
		Where("key IN (?)", bun.In(values)).
		Exec(ctx)
	return err
}
