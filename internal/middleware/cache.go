package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const eventListKeyPrefix = "cache:events:list:"

type cachedBody struct {
	Status int
	Header map[string][]string
	Body   []byte
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func eventListKey(c *gin.Context) string {
	return eventListKeyPrefix + sha1Hex("GET|/api/events|"+c.Request.URL.RawQuery)
}

// EventListCache caches the public events listing for a short TTL. Only this
// read-only endpoint is cached; seat accounting always reads the database.
func EventListCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := eventListKey(c)

		if b, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil && len(b) > 0 {
			var hit cachedBody
			if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&hit); err == nil {
				for k, vals := range hit.Header {
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Writer.Header().Set("X-Cache", "HIT")
				c.Status(hit.Status)
				_, _ = c.Writer.Write(hit.Body)
				c.Abort()
				return
			}
		}

		buf := &bytes.Buffer{}
		bw := &bufferedWriter{ResponseWriter: c.Writer, buf: buf}
		c.Writer = bw

		c.Next()

		// only successful responses get cached
		if bw.Status() >= 200 && bw.Status() < 300 {
			item := cachedBody{
				Status: bw.Status(),
				Header: c.Writer.Header(),
				Body:   buf.Bytes(),
			}

			var encoded bytes.Buffer
			if err := gob.NewEncoder(&encoded).Encode(item); err == nil {
				_ = rdb.Set(context.Background(), key, encoded.Bytes(), ttl).Err()
			}
			c.Writer.Header().Set("X-Cache", "MISS")
		}
	}
}

type bufferedWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheInvalidator purges cached event listings after mutations.
type CacheInvalidator struct {
	rdb *redis.Client
}

func NewCacheInvalidator(rdb *redis.Client) *CacheInvalidator {
	return &CacheInvalidator{rdb: rdb}
}

// PurgeEventLists drops every cached page of the events listing.
func (ci *CacheInvalidator) PurgeEventLists(ctx context.Context) {
	iter := ci.rdb.Scan(ctx, 0, eventListKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		_ = ci.rdb.Del(ctx, iter.Val()).Err()
	}
}
