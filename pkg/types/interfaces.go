// Package types defines the shared interfaces used across langgen.
package types

import "io/fs"

// FS abstracts the filesystem operations the generator performs.
// The engine only ever reads, writes, stats, and creates directories;
// keeping the surface this small makes in-memory test filesystems trivial.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
