package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/shop-api/pkg/constants"
)

// RateLimitState — простой in-memory rate limiter по IP (скользящее окно, max N запросов).
type RateLimitState struct {
	mu        sync.Mutex
	perIP     map[string]*rateWindow
	limit     int
	windowSec time.Duration
	stop      chan struct{}
	stopOnce  sync.Once
}

type rateWindow struct {
	count       int
	windowStart time.Time
}

// NewRateLimitState создаёт лимитер: limit запросов на windowSec (например 5 на 1 сек).
// limit < 1 блокирует все запросы.
func NewRateLimitState(limit int, windowSec time.Duration) *RateLimitState {
	s := &RateLimitState{
		perIP:     make(map[string]*rateWindow),
		limit:     limit,
		windowSec: windowSec,
		stop:      make(chan struct{}),
	}
	go s.cleanup()
	return s
}

func (s *RateLimitState) cleanup() {
	ticker := time.NewTicker(2 * s.windowSec)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}
		s.mu.Lock()
		for ip, w := range s.perIP {
			if time.Since(w.windowStart) > 2*s.windowSec {
				delete(s.perIP, ip)
			}
		}
		s.mu.Unlock()
	}
}

// Close останавливает фоновую очистку. Повторный вызов безопасен.
func (s *RateLimitState) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Allow возвращает true, если запрос разрешён, false если лимит превышен.
func (s *RateLimitState) Allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limit < 1 {
		return false
	}
	now := time.Now()
	w, ok := s.perIP[ip]
	if !ok {
		s.perIP[ip] = &rateWindow{count: 1, windowStart: now}
		return true
	}
	if now.Sub(w.windowStart) >= s.windowSec {
		w.count = 1
		w.windowStart = now
		return true
	}
	w.count++
	return w.count <= s.limit
}

// RateLimitMiddleware ограничивает частоту запросов по клиентскому IP.
func RateLimitMiddleware(limiter *RateLimitState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header(constants.HeaderRetryAfter, "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded", "message": "too many requests",
			})
			return
		}
		c.Next()
	}
}
