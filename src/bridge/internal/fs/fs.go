package fs

import (
	"os"
	"path/filepath"

	"go.uber.org/fx"
)

//go:generate mockgen -source=fs.go -destination=fsmock/fs_mock.go -package=fsmock

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// BridgeFS wraps the filesystem operations used by the daemon.
type BridgeFS interface {
	MkdirAll(path string) error
	Abs(path string) (string, error)
	DirExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	Remove(name string) error
	TempFile(dir, pattern string) (*os.File, error)
}

type fsImpl struct{}

// New creates a new BridgeFS.
func New() BridgeFS {
	return fsImpl{}
}

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

// Abs returns an absolute, cleaned representation of path.
func (fsImpl) Abs(path string) (string, error) { return filepath.Abs(path) }

// DirExists reports whether path exists and is a directory.
func (fsImpl) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}

func (fsImpl) TempFile(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}
