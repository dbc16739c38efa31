package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает частоту запросов по ключу (обычно IP клиента).
// Каждый ключ получает rate запросов на окно window
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	cleanupC chan struct{}
	now      func() time.Time
	rate     int
	window   time.Duration
	mu       sync.Mutex
	stopOnce sync.Once
}

// bucket представляет bucket для конкретного IP/ключа
type bucket struct {
	lastRefill time.Time
	tokens     int
}

// NewRateLimiter создает новый rate limiter
// rate - максимальное количество запросов в единицу времени
// window - временное окно (например, 1 минута)
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		now:      time.Now,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивные buckets
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, b := range rl.buckets {
		if now.Sub(b.lastRefill) > rl.window*2 {
			delete(rl.buckets, key)
			removed++
		}
	}
	if removed > 0 {
		rl.logger.Debug("rate limiter buckets cleaned", "removed", removed, "remaining", len(rl.buckets))
	}
}

// Stop останавливает cleanup goroutine. Повторный вызов безопасен
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, exists := rl.buckets[key]
	if !exists || now.Sub(b.lastRefill) >= rl.window {
		b = &bucket{tokens: rl.rate, lastRefill: now}
		rl.buckets[key] = b
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// RateLimitMiddleware ограничивает все запросы через limiter по IP клиента
func RateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(limiter, logger, w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PathRateLimit задает лимит для запросов с данным методом и путем
type PathRateLimit struct {
	Method string
	Path   string
	Rate   int
	Window time.Duration
}

// RateLimitByPathMiddleware применяет лимиты только к перечисленным маршрутам,
// остальные запросы проходят без ограничений.
// Возвращает функцию остановки cleanup goroutine всех limiters
func RateLimitByPathMiddleware(limits []PathRateLimit, logger *slog.Logger) (func(http.Handler) http.Handler, func()) {
	limiters := make(map[string]*RateLimiter, len(limits))
	for _, limit := range limits {
		limiters[routeKey(limit.Method, limit.Path)] = NewRateLimiter(limit.Rate, limit.Window, logger)
	}

	stop := func() {
		for _, l := range limiters {
			l.Stop()
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter, exists := limiters[routeKey(r.Method, r.URL.Path)]
			if exists && !allow(limiter, logger, w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}, stop
}

func routeKey(method, path string) string {
	return method + " " + path
}

func allow(limiter *RateLimiter, logger *slog.Logger, w http.ResponseWriter, r *http.Request) bool {
	key := getClientIP(r)
	if limiter.Allow(key) {
		return true
	}

	logger.WarnContext(r.Context(), "Rate limit exceeded",
		"ip", key,
		"method", r.Method,
		"path", r.URL.Path,
	)
	w.Header().Set("Retry-After", retryAfter(limiter.window))
	writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
	return false
}

func retryAfter(window time.Duration) string {
	secs := int(window.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
