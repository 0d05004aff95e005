package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// cacheEntry is one cached response
type cacheEntry struct {
	Content     []byte
	ContentType string
	StatusCode  int
	Expiration  time.Time
}

// memoryCache is an in-process response cache
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var cache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// CacheConfig configures the cache middleware
type CacheConfig struct {
	Expiration time.Duration             // cache TTL
	Methods    []string                  // HTTP methods to cache
	KeyFunc    func(*gin.Context) string // custom cache key function
}

// DefaultCacheConfig is used for zero-value fields
var DefaultCacheConfig = CacheConfig{
	Expiration: 5 * time.Minute,
	Methods:    []string{http.MethodGet},
	KeyFunc:    defaultKeyFunc,
}

// defaultKeyFunc builds a key from the path and sorted query parameters
func defaultKeyFunc(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	key := path + "?" + queryString

	hasher := md5.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}

// cachedWriter captures the response body while writing it through
type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

// Cache returns a middleware that serves repeated reads from memory
func Cache(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultCacheConfig.Methods
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		cacheable := false
		for _, method := range cfg.Methods {
			if c.Request.Method == method {
				cacheable = true
				break
			}
		}
		if !cacheable {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)

		cache.RLock()
		entry, found := cache.items[key]
		cache.RUnlock()

		if found && time.Now().Before(entry.Expiration) {
			c.Data(entry.StatusCode, entry.ContentType, entry.Content)
			c.Abort()
			return
		}

		writer := &cachedWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		// Only cache successful responses
		if c.Writer.Status() == http.StatusOK {
			cache.Lock()
			cache.items[key] = cacheEntry{
				Content:     writer.body.Bytes(),
				ContentType: writer.Header().Get("Content-Type"),
				StatusCode:  writer.Status(),
				Expiration:  time.Now().Add(cfg.Expiration),
			}
			cache.Unlock()
		}
	}
}

// InvalidateCache drops every cached response. Write handlers call this so
// list reads do not serve stale data.
func InvalidateCache() {
	cache.Lock()
	cache.items = make(map[string]cacheEntry)
	cache.Unlock()
}
