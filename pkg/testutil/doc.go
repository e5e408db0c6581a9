// Package testutil provides utilities for testing opsline components.
//
// Key components:
//   - FakeDaemon: an HTTP server on a Unix socket standing in for a container runtime
//   - HangingSocket: a socket that accepts connections and never answers
//   - MemFS: in-memory filesystem trees for probe tests
//   - InitRepo: throwaway git repositories (skips when git is unavailable)
//
// All helpers register their own cleanup with t.Cleanup.
package testutil
