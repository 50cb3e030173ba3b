package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"redeem-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	accountCacheKeyPrefix = "account:"
	accountCacheTTL       = 5 * time.Minute
)

// accountCacheEntry is the cache serialization of an account row. The entity's
// own JSON shape hides the password hash from API responses, so marshaling the
// entity would cache rows with an empty credential and a later save would
// persist the gap. The entry carries every stored column explicitly.
type accountCacheEntry struct {
	ID          uuid.UUID    `json:"id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Email       string       `json:"email"`
	Genre       entity.Genre `json:"genre"`
	DateOfBirth string       `json:"date_of_birth"`
	Password    string       `json:"password"`
	NetworkID   uuid.UUID    `json:"network_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func newAccountCacheEntry(account *entity.Account) *accountCacheEntry {
	return &accountCacheEntry{
		ID:          account.ID,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Email:       account.Email,
		Genre:       account.Genre,
		DateOfBirth: account.DateOfBirth,
		Password:    account.Password,
		NetworkID:   account.NetworkID,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}

// account rebuilds the entity. Relations stay unloaded; the resolver layer
// fetches them on demand, and only live rows are ever cached.
func (e *accountCacheEntry) account() *entity.Account {
	return &entity.Account{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		Genre:       e.Genre,
		DateOfBirth: e.DateOfBirth,
		Password:    e.Password,
		NetworkID:   e.NetworkID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// AccountCache is a cache-aside layer over account lookups. Entries are
// written on read and dropped on every mutation of the cached account, so a
// stale entry can only outlive a write by one failed invalidation (logged).
type AccountCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewAccountCache(client *redis.Client, log *logrus.Logger) *AccountCache {
	return &AccountCache{client: client, log: log}
}

func (c *AccountCache) Get(ctx context.Context, id uuid.UUID) (*entity.Account, bool) {
	data, err := c.client.Get(ctx, accountCacheKeyPrefix+id.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read account cache: %+v", err)
		}
		return nil, false
	}

	var entry accountCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.log.Warnf("Failed to decode cached account: %+v", err)
		return nil, false
	}
	return entry.account(), true
}

func (c *AccountCache) Set(ctx context.Context, account *entity.Account) {
	data, err := json.Marshal(newAccountCacheEntry(account))
	if err != nil {
		c.log.Warnf("Failed to encode account for cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, accountCacheKeyPrefix+account.ID.String(), data, accountCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write account cache: %+v", err)
	}
}

func (c *AccountCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, accountCacheKeyPrefix+id.String()).Err(); err != nil {
		c.log.Warnf("Failed to invalidate account cache: %+v", err)
	}
}
