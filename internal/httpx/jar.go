package httpx

import (
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"
)

// NewCookieJar returns a cookie jar with public-suffix-aware domain matching,
// so session cookies handed out by the catalog sites persist across requests
// without leaking between unrelated domains.
func NewCookieJar() http.CookieJar {
	// cookiejar.New cannot fail with a non-nil options struct.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}
