package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// FetchKey generates the cache key for the conditional-download metadata of a URL
func FetchKey(url string) string {
	return "pantrymap:fetch:v1:" + digest(url)
}

// ReviewKey generates the cache key for a model suggestion about one name.
// The model is part of the key so switching models does not reuse answers.
func ReviewKey(model, name string) string {
	return "pantrymap:review:v1:" + digest(strings.ToLower(model)+"\x00"+name)
}

func digest(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}
