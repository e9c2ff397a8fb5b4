package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const suggestionKeyPrefix = "triage:suggestion:"

// CachedAssistant memoizes suggestions in Redis keyed by a digest of the
// summary. Cache failures fall through to the inner assistant.
type CachedAssistant struct {
	inner  TriageAssistant
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedAssistant(inner TriageAssistant, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedAssistant {
	return &CachedAssistant{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedAssistant) Suggest(ctx context.Context, summary string) (Suggestion, error) {
	key := suggestionKey(summary)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		var s Suggestion
		if err := json.Unmarshal([]byte(cached), &s); err == nil {
			return s, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("suggestion cache read failed", zap.Error(err))
	}

	s, err := c.inner.Suggest(ctx, summary)
	if err != nil {
		return Suggestion{}, err
	}

	if payload, err := json.Marshal(s); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("suggestion cache write failed", zap.Error(err))
		}
	}
	return s, nil
}

func suggestionKey(summary string) string {
	digest := sha256.Sum256([]byte(summary))
	return suggestionKeyPrefix + hex.EncodeToString(digest[:])
}
