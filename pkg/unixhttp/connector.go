// Package unixhttp lets a net/http client talk to a server listening on a
// Unix domain socket, such as the Docker or Podman management API.
//
// The pieces mirror a pluggable HTTP stack: a Connector opens the socket,
// a Resolver stands in for DNS, and a Transport is the buffered byte
// stream a request is written to and a response is read from.
package unixhttp

import (
	"context"
	"net"

	"github.com/arthur-debert/opsline/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	defaultInputSize  = 4096
	defaultOutputSize = 1024
)

// Connector opens stream connections to one Unix domain socket.
type Connector struct {
	path       string
	inputSize  int
	outputSize int
	logger     zerolog.Logger
}

// Option configures a Connector.
type Option func(*Connector)

// WithBufferSizes sets the initial capacity of the input and output buffers.
func WithBufferSizes(input, output int) Option {
	return func(c *Connector) {
		if input > 0 {
			c.inputSize = input
		}
		if output > 0 {
			c.outputSize = output
		}
	}
}

// WithLogger sets the logger used for connection diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Connector) {
		c.logger = logger
	}
}

// NewConnector creates a connector for the socket at path.
func NewConnector(path string, opts ...Option) *Connector {
	c := &Connector{
		path:       path,
		inputSize:  defaultInputSize,
		outputSize: defaultOutputSize,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the socket path.
func (c *Connector) Path() string {
	return c.path
}

// Connect opens the socket. A context deadline becomes the deadline of
// every read and write on the returned transport.
func (c *Connector) Connect(ctx context.Context) (*Transport, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", c.path)
	if err != nil {
		c.logger.Info().Err(err).Str("socket", c.path).Msg("connection failed")
		return nil, errors.Wrapf(err, errors.ErrSocketConnect, "connect to %s", c.path).
			WithDetail("path", c.path)
	}

	unixConn, ok := conn.(*net.UnixConn)
	if !ok {
		_ = conn.Close()
		return nil, errors.Newf(errors.ErrSocketConnect, "connect to %s: not a unix stream", c.path)
	}

	t := newTransport(unixConn, c.inputSize, c.outputSize)
	if deadline, ok := ctx.Deadline(); ok {
		if err := t.SetDeadline(deadline); err != nil {
			_ = t.Close()
			return nil, classify("set deadline", err)
		}
	}

	c.logger.Debug().Str("socket", c.path).Msg("connected")
	return t, nil
}
