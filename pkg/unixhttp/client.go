package unixhttp

import (
	"context"
	"net"
	"net/http"
	"time"
)

// BaseURL is the origin to use for requests sent through a socket client.
// Only the path and query reach the server.
const BaseURL = "http://d"

// NewClient returns an HTTP client whose every connection is a fresh
// Transport on the socket at path. Connections are not reused; timeout
// bounds the whole exchange.
func NewClient(path string, timeout time.Duration, opts ...Option) *http.Client {
	connector := NewConnector(path, opts...)
	resolver := Resolver{}

	dial := func(ctx context.Context, _, addr string) (net.Conn, error) {
		addrs, err := resolver.Resolve(ctx, addr)
		if err != nil {
			return nil, err
		}
		connector.logger.Trace().Str("addr", addr).Stringer("resolved", addrs[0]).Msg("skipping name resolution")

		t, err := connector.Connect(ctx)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext:           dial,
			DisableKeepAlives:     true,
			MaxIdleConns:          1,
			ResponseHeaderTimeout: timeout,
		},
	}
}
