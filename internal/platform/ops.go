package platform

import (
	"fmt"

	"github.com/aretw0/inikit/pkg/adapters/fs"
	"github.com/aretw0/inikit/pkg/core"
)

// newRepository builds the storage adapter for one file.
// The path argument is adapter-specific (a file path for 'fs').
func newRepository(path string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository(path), nil
	}

	switch o.adapter {
	case "fs":
		return initFS(path, o), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initFS maps the registry options onto the filesystem adapter.
func initFS(path string, o *options) *fs.Repository {
	return fs.NewRepository(fs.Config{
		Path:        path,
		Logger:      o.logger,
		FileMode:    o.fileMode,
		EventBuffer: o.eventBuffer,
	})
}
