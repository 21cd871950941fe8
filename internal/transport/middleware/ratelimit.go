package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a token bucket limiter keyed by caller. Authenticated
// callers are keyed by email so agents sharing an office NAT do not starve
// each other; anonymous callers are keyed by client IP.
type RateLimiter struct {
	buckets sync.Map // caller key -> *bucket
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter starts a limiter that evicts idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the eviction goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per caller with bursts of the same
// size. Rejections carry Retry-After in whole seconds.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	limit := strconv.Itoa(maxPerMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(callerKey(r), maxPerMinute)
			remaining, wait := b.take(rl.now())

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if email, ok := ctxutil.UserEmailFromCtx(r.Context()); ok {
		return "user:" + email
	}
	return "ip:" + ClientIP(r)
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *bucket {
	if v, ok := rl.buckets.Load(key); ok {
		return v.(*bucket)
	}
	capacity := float64(maxPerMinute)
	v, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60,
		lastRefill: rl.now(),
	})
	return v.(*bucket)
}

// take consumes one token. When none is left it returns how long until the
// next one is available.
func (b *bucket) take(now time.Time) (remaining int, wait time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now

	if b.tokens < 1 {
		return 0, time.Duration((1 - b.tokens) / b.perSecond * float64(time.Second))
	}
	b.tokens--
	return int(b.tokens), 0
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
