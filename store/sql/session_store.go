package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SessionStore keeps the guest session identifier in the local state table.
type SessionStore struct {
	db         *bun.DB
	repo       repository.Repository[*localStateRecord]
	clientName string
}

func (s *SessionStore) Load(ctx context.Context) (string, error) {
	if s == nil || s.repo == nil {
		return "", fmt.Errorf("sqlstore: session store is not configured")
	}
	records, _, err := s.repo.List(ctx,
		repository.SelectBy("client_name", "=", s.clientName),
		repository.SelectBy("key", "=", stateKeySessionID),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return "", err
	}
	if len(records) == 0 || records[0] == nil {
		return "", nil
	}
	return records[0].Value, nil
}

func (s *SessionStore) Save(ctx context.Context, id string) error {
	if s == nil || s.db == nil || s.repo == nil {
		return fmt.Errorf("sqlstore: session store is not configured")
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return fmt.Errorf("sqlstore: session id is required")
	}

	now := time.Now().UTC()
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := deleteStateKeys(ctx, tx, s.clientName, stateKeySessionID); err != nil {
			return err
		}
		record := &localStateRecord{
			ID:         uuid.NewString(),
			ClientName: s.clientName,
			Key:        stateKeySessionID,
			Value:      trimmed,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		_, err := s.repo.CreateTx(ctx, tx, record)
		return err
	})
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlstore: session store is not configured")
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return deleteStateKeys(ctx, tx, s.clientName, stateKeySessionID)
	})
}
