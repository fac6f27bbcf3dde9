package rate

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterMap provides per-IP rate limiting. Idle entries are evicted by a
// background sweeper so the map does not grow with every visitor ever seen.
type LimiterMap struct {
	mu      sync.Mutex
	clients map[string]*client
	rpm     int
	burst   int
	idleTTL time.Duration
	stopCh  chan struct{}
}

// NewLimiterMap creates a LimiterMap and starts its sweeper goroutine.
// Call Stop to shut the sweeper down.
func NewLimiterMap(rpm, burst int, idleTTL time.Duration) *LimiterMap {
	lm := &LimiterMap{
		clients: make(map[string]*client),
		rpm:     rpm,
		burst:   burst,
		idleTTL: idleTTL,
		stopCh:  make(chan struct{}),
	}
	go lm.sweep()
	return lm
}

func (l *LimiterMap) sweep() {
	t := time.NewTicker(l.idleTTL)
	defer t.Stop()
	for {
		select {
		case <-l.stopCh:
			return
		case now := <-t.C:
			l.mu.Lock()
			for ip, c := range l.clients {
				if now.Sub(c.lastSeen) > l.idleTTL {
					delete(l.clients, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Stop stops the sweeper goroutine.
func (l *LimiterMap) Stop() { close(l.stopCh) }

// Allow reports whether a request from ip should be admitted.
func (l *LimiterMap) Allow(ip string) bool {
	l.mu.Lock()
	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.rpm)), l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	l.mu.Unlock()
	return c.limiter.Allow()
}

// IPFromRequest extracts the client IP, preferring the first
// X-Forwarded-For element when present.
func IPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
