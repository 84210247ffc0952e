package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/jhouston2019/auditintel/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from notice text. Identical text always maps to
// the same key, so repeated analyses of the same notice are served from
// cache.
func Key(noticeText string) string {
	hash := sha256.Sum256([]byte(noticeText))
	return "auditintel:v1:" + hex.EncodeToString(hash[:])
}

// AnalysisCache stores serialized analysis results keyed by notice text
type AnalysisCache struct {
	cache Cache
}

// NewAnalysisCache wraps a cache with analysis result serialization
func NewAnalysisCache(c Cache) *AnalysisCache {
	return &AnalysisCache{cache: c}
}

// Get retrieves a cached analysis for the given notice text
func (c *AnalysisCache) Get(noticeText string) (*model.AnalysisResult, bool) {
	data, found := c.cache.Get(Key(noticeText))
	if !found {
		return nil, false
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		// Corrupt entry; drop it
		_ = c.cache.Delete(Key(noticeText))
		return nil, false
	}

	return &result, true
}

// Set stores an analysis result for the given notice text
func (c *AnalysisCache) Set(noticeText string, result *model.AnalysisResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.cache.Set(Key(noticeText), data, ttl)
}
