package sqlstore

import (
	"time"

	"github.com/uptrace/bun"
)

// localStateRecord is one key of durable client state. Credentials and the
// guest session identifier live in the same table so a single wipe clears
// everything tied to a signed-in user.
type localStateRecord struct {
	bun.BaseModel `bun:"table:storefront_local_state,alias:sls"`

	ID         string     `bun:"id,pk"`
	ClientName string     `bun:"client_name,notnull"`
	Key        string     `bun:"key,notnull"`
	Value      string     `bun:"value,notnull"`
	ExpiresAt  *time.Time `bun:"expires_at,nullzero"`
	CreatedAt  time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

const (
	stateKeyAccessToken  = "access_token"
	stateKeyRefreshToken = "refresh_token"
	stateKeySessionID    = "session_id"
)
