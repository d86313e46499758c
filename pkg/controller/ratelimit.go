package controller

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP. Buckets unused for
// a while are dropped on the next lookup sweep.
//
// The client IP is the connection peer. X-Forwarded-For is only consulted
// when the peer is one of the trusted proxies.
type IPRateLimiter struct {
	mu             sync.Mutex
	visitors       map[string]*visitor
	limit          rate.Limit
	burst          int
	trustedProxies []netip.Prefix
	lastSweep      time.Time
	now            func() time.Time
}

func NewIPRateLimiter(perSecond float64, burst int, trustedProxies ...netip.Prefix) *IPRateLimiter {
	return &IPRateLimiter{
		visitors:       make(map[string]*visitor),
		limit:          rate.Limit(perSecond),
		burst:          burst,
		trustedProxies: trustedProxies,
		now:            time.Now,
	}
}

// ParseTrustedProxies accepts plain IPs and CIDR ranges.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("could not parse trusted proxy %q: %w", v, err)
			}
			prefixes = append(prefixes, p.Masked())

			continue
		}

		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("could not parse trusted proxy %q: %w", v, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes, nil
}

// Allow consumes a token from ip's bucket.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// ClientIP returns the address the bucket of r is keyed on.
func (l *IPRateLimiter) ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	peer, err := netip.ParseAddr(host)
	if err != nil || !l.trusted(peer) {
		return host
	}

	// walk right to left: the first hop that is not one of our proxies
	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !l.trusted(addr) {
			return addr.Unmap().String()
		}
	}

	return host
}

func (l *IPRateLimiter) trusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range l.trustedProxies {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}

// Middleware answers 429 once the caller's bucket is empty.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(l.ClientIP(r)) {
			w.Header().Set("Retry-After", "60")
			WriteError(w, http.StatusTooManyRequests, "too many requests, try again later")

			return
		}

		next.ServeHTTP(w, r)
	})
}
