package testutil

import (
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// SocketPath returns a fresh socket path short enough for sun_path.
// t.TempDir paths can exceed the 108 byte limit on some systems.
func SocketPath(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "opsline")
	if err != nil {
		t.Fatalf("Failed to create socket dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return filepath.Join(dir, "api.sock")
}

// FakeDaemon serves handler on a Unix socket and returns the socket path.
func FakeDaemon(t *testing.T, handler http.Handler) string {
	t.Helper()

	path := SocketPath(t)
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("Failed to listen on %s: %v", path, err)
	}

	srv := &http.Server{Handler: handler}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = srv.Serve(ln)
	}()

	t.Cleanup(func() {
		_ = srv.Close()
		wg.Wait()
	})
	return path
}

// ContainersHandler answers GET /containers/json with a fixed body.
func ContainersHandler(body string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/containers/json", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Query().Get("all") != "true" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
	return mux
}

// HangingSocket accepts connections on a Unix socket and never writes to
// them. Each accepted connection is delivered on the returned channel.
func HangingSocket(t *testing.T) (string, <-chan net.Conn) {
	t.Helper()

	path := SocketPath(t)
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("Failed to listen on %s: %v", path, err)
	}

	conns := make(chan net.Conn, 8)
	var (
		mu       sync.Mutex
		accepted []net.Conn
		wg       sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			accepted = append(accepted, c)
			mu.Unlock()
			select {
			case conns <- c:
			default:
			}
		}
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		wg.Wait()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range accepted {
			_ = c.Close()
		}
	})
	return path, conns
}
