package util

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// NewProxyFunc builds a request proxy selector. Explicit settings override
// the HTTP_PROXY, HTTPS_PROXY and NO_PROXY environment variables field by
// field; hosts matched by noProxy always connect directly.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) (func(*http.Request) (*url.URL, error), error) {
	cfg := httpproxy.FromEnvironment()
	for _, p := range []string{httpProxy, httpsProxy} {
		if p == "" {
			continue
		}
		if _, err := url.Parse(p); err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", p, err)
		}
	}
	if httpProxy != "" {
		cfg.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		cfg.HTTPSProxy = httpsProxy
	}
	if noProxy != "" {
		cfg.NoProxy = noProxy
	}

	proxy := cfg.ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return proxy(req.URL)
	}, nil
}

// NewHTTPClient returns a client routed through the configured proxies.
// A zero timeout means no overall deadline; long downloads rely on the
// caller's context instead.
func NewHTTPClient(timeout time.Duration, httpProxy, httpsProxy, noProxy string) (*http.Client, error) {
	proxy, err := NewProxyFunc(httpProxy, httpsProxy, noProxy)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxy

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("stopped after 5 redirects")
			}
			return nil
		},
	}, nil
}
