package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"boat-quotes/internal/pkg/errs"
	"boat-quotes/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// The quote form keeps exactly one in-progress draft, so a single key is
// enough. The TTL is the retention period; Redis expiry does the cleanup.
const draftKey = "drafts:current"

type DraftStore struct {
	client    *redis.Client
	retention time.Duration
}

func NewDraftStore(client *redis.Client, retention time.Duration) *DraftStore {
	return &DraftStore{client: client, retention: retention}
}

func (s *DraftStore) Save(ctx context.Context, draft *queries.DraftView) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return errs.Wrap(err, "failed to marshal draft")
	}

	if err := s.client.Set(ctx, draftKey, payload, s.retention).Err(); err != nil {
		return errs.Wrap(err, "failed to store draft")
	}
	return nil
}

func (s *DraftStore) Load(ctx context.Context) (*queries.DraftView, error) {
	payload, err := s.client.Get(ctx, draftKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load draft")
	}

	var draft queries.DraftView
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal draft")
	}
	return &draft, nil
}

func (s *DraftStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, draftKey).Err(); err != nil {
		return errs.Wrap(err, "failed to clear draft")
	}
	return nil
}
