// Package httpx assembles the HTTP transport chain shared by the catalog
// clients: browser impersonation, transparent response decompression and a
// public-suffix-aware cookie jar.
package httpx

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"
)

// browserTransport makes outgoing requests look like a desktop browser: a
// User-Agent drawn from a rotation pool, the matching identity headers, and
// an optional randomized delay before each request so bursts of searches do
// not look automated.
type browserTransport struct {
	base     http.RoundTripper
	agents   []string
	delayMin time.Duration
	delayMax time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBrowserTransport wraps base with browser impersonation. Each request gets
// a random User-Agent from agents unless one is already set. When delayMax is
// positive, every request first sleeps a random duration in
// [delayMin, delayMax], honoring the request context.
func NewBrowserTransport(base http.RoundTripper, agents []string, delayMin, delayMax time.Duration) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &browserTransport{
		base:     base,
		agents:   agents,
		delayMin: delayMin,
		delayMax: delayMax,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (t *browserTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.sleep(req.Context()); err != nil {
		return nil, err
	}

	req = req.Clone(req.Context())

	ua := req.Header.Get("User-Agent")
	if ua == "" && len(t.agents) > 0 {
		ua = t.agents[t.intn(len(t.agents))]
		req.Header.Set("User-Agent", ua)
	}
	setIdentityHeaders(req.Header, ua)

	return t.base.RoundTrip(req)
}

// sleep waits a random duration between delayMin and delayMax, aborting early
// when the context is cancelled.
func (t *browserTransport) sleep(ctx context.Context) error {
	if t.delayMax <= 0 {
		return nil
	}
	d := t.delayMin
	if spread := t.delayMax - t.delayMin; spread > 0 {
		d += time.Duration(t.int63n(int64(spread)))
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (t *browserTransport) intn(n int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rnd.Intn(n)
}

func (t *browserTransport) int63n(n int64) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rnd.Int63n(n)
}

var chromeVersion = regexp.MustCompile(`Chrome/(\d+)`)

// setIdentityHeaders fills in the header set browsers send on navigation.
// Existing values are left alone so callers can override per request.
// Client hints only go out with Chromium User-Agents; Firefox and Safari
// do not send them.
func setIdentityHeaders(h http.Header, ua string) {
	if h.Get("Accept") == "" {
		h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	}
	if h.Get("Accept-Language") == "" {
		h.Set("Accept-Language", "en-US,en;q=0.9")
	}
	if h.Get("Upgrade-Insecure-Requests") == "" {
		h.Set("Upgrade-Insecure-Requests", "1")
	}
	if h.Get("Sec-Fetch-Dest") == "" {
		h.Set("Sec-Fetch-Dest", "document")
	}
	if h.Get("Sec-Fetch-Mode") == "" {
		h.Set("Sec-Fetch-Mode", "navigate")
	}
	if h.Get("Sec-Fetch-Site") == "" {
		if h.Get("Referer") != "" {
			h.Set("Sec-Fetch-Site", "same-origin")
		} else {
			h.Set("Sec-Fetch-Site", "none")
		}
	}

	m := chromeVersion.FindStringSubmatch(ua)
	if m == nil {
		return
	}
	major := m[1]
	if h.Get("sec-ch-ua") == "" {
		h.Set("sec-ch-ua", fmt.Sprintf(`"Not;A=Brand";v="99", "Google Chrome";v=%q, "Chromium";v=%q`, major, major))
	}
	if h.Get("sec-ch-ua-mobile") == "" {
		h.Set("sec-ch-ua-mobile", "?0")
	}
	if h.Get("sec-ch-ua-platform") == "" {
		h.Set("sec-ch-ua-platform", chromePlatform(ua))
	}
}

func chromePlatform(ua string) string {
	switch {
	case strings.Contains(ua, "Macintosh"):
		return `"macOS"`
	case strings.Contains(ua, "X11"):
		return `"Linux"`
	default:
		return `"Windows"`
	}
}
