// Package lifecycle exposes file watching as a lifecycle.Source.
package lifecycle

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/inikit/pkg/core"
)

type fileSource struct {
	file   *core.File
	logger *slog.Logger
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source over the disk changes of f.
// The file is reloaded before each create or modify event is emitted, so a
// consumer reading f after receiving an event sees the new content.
// A nil logger discards reload errors.
func NewSource(f *core.File, logger *slog.Logger) lifecycle.Source {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &fileSource{
		file:   f,
		logger: logger,
		out:    make(chan lifecycle.Event),
	}
}

func (s *fileSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start begins watching. It fails when the file's repository cannot watch.
func (s *fileSource) Start(ctx context.Context) error {
	events, err := s.file.Watch(ctx)
	if err != nil {
		return err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				if e.Type != core.EventDelete {
					if err := s.file.Reload(); err != nil {
						s.logger.Error("reload failed", "path", s.file.Path(), "error", err)
					}
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
