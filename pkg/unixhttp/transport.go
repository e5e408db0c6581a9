package unixhttp

import (
	"bytes"
	stderrors "errors"
	"io"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/arthur-debert/opsline/pkg/errors"
	"golang.org/x/sys/unix"
)

// Transport is a buffered duplex stream over a Unix socket. It implements
// net.Conn so it can be handed to net/http.
//
// Writes go through the output buffer, which is drained to the socket
// before Write returns. Reads are served from the input buffer, which is
// refilled from the socket only when empty.
type Transport struct {
	conn    *net.UnixConn
	input   bytes.Buffer
	output  bytes.Buffer
	scratch []byte
}

var _ net.Conn = (*Transport)(nil)

func newTransport(conn *net.UnixConn, inputSize, outputSize int) *Transport {
	t := &Transport{
		conn:    conn,
		scratch: make([]byte, inputSize),
	}
	t.input.Grow(inputSize)
	t.output.Grow(outputSize)
	return t
}

// Write queues p and transmits everything buffered.
func (t *Transport) Write(p []byte) (int, error) {
	t.output.Write(p)
	if err := t.transmitOutput(); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *Transport) transmitOutput() error {
	for t.output.Len() > 0 {
		n, err := t.conn.Write(t.output.Bytes())
		t.output.Next(n)
		if err != nil {
			return classify("write", err)
		}
	}
	return nil
}

// Read returns buffered input, waiting for more from the socket when the
// buffer is empty.
func (t *Transport) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for t.input.Len() == 0 {
		more, err := t.awaitInput()
		if err != nil {
			return 0, err
		}
		if !more {
			return 0, io.EOF
		}
	}
	return t.input.Read(p)
}

// awaitInput appends one socket read to the input buffer. It reports
// false once the peer has closed its end.
func (t *Transport) awaitInput() (bool, error) {
	n, err := t.conn.Read(t.scratch)
	t.input.Write(t.scratch[:n])
	switch {
	case err == io.EOF:
		return n > 0, nil
	case err != nil:
		return false, classify("read", err)
	}
	return true, nil
}

// Buffered returns the number of received bytes not yet consumed.
func (t *Transport) Buffered() int {
	return t.input.Len()
}

// IsOpen probes the connection without blocking. Nothing pending means the
// connection is idle and open. A pending byte also means open; it is kept
// in the input buffer so the next Read still sees it. End of stream or any
// other error means closed.
//
// The runtime keeps the descriptor in non-blocking mode, so the raw read
// below never parks and there is no blocking flag to restore.
func (t *Transport) IsOpen() bool {
	raw, err := t.conn.SyscallConn()
	if err != nil {
		return false
	}

	var (
		buf     [1]byte
		n       int
		readErr error
	)
	err = raw.Read(func(fd uintptr) bool {
		n, readErr = unix.Read(int(fd), buf[:])
		return true
	})
	if err != nil {
		return false
	}

	switch {
	case readErr == nil && n > 0:
		t.input.Write(buf[:n])
		return true
	case readErr == nil:
		return false
	case stderrors.Is(readErr, unix.EAGAIN), stderrors.Is(readErr, unix.EWOULDBLOCK):
		return true
	}
	return false
}

func (t *Transport) Close() error {
	return t.conn.Close()
}

func (t *Transport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

func (t *Transport) RemoteAddr() net.Addr {
	return t.conn.RemoteAddr()
}

func (t *Transport) SetDeadline(d time.Time) error {
	return t.conn.SetDeadline(d)
}

func (t *Transport) SetReadDeadline(d time.Time) error {
	return t.conn.SetReadDeadline(d)
}

func (t *Transport) SetWriteDeadline(d time.Time) error {
	return t.conn.SetWriteDeadline(d)
}

// classify maps socket errors onto typed codes. Timeouts and resets stay
// distinguishable so callers can tell a slow daemon from a dead one.
func classify(op string, err error) error {
	switch {
	case stderrors.Is(err, os.ErrDeadlineExceeded):
		return errors.Wrapf(err, errors.ErrSocketTimeout, "%s timed out", op)
	case stderrors.Is(err, syscall.ECONNRESET), stderrors.Is(err, syscall.EPIPE):
		return errors.Wrapf(err, errors.ErrSocketReset, "%s: connection reset", op)
	}
	return errors.Wrapf(err, errors.ErrSocketIO, "%s failed", op)
}
