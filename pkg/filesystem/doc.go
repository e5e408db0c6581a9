// Package filesystem provides the filesystem seam used by segment probes.
//
// Probes read marker files (kubeconfig, .terraform/environment) and ask
// whether a directory is writable. The OS implementation is used at
// runtime; the afero implementation backs tests with in-memory trees.
package filesystem
