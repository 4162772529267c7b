package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
	"go.trai.ch/zerr"
)

// run is the body of the session goroutine. It owns the event source for the
// lifetime of the session.
func (s *Supervisor) run(ctx context.Context, root string, done chan struct{}) {
	defer s.finish(done)

	source, err := s.factory.Open(root)
	if err != nil {
		s.logger.Error(zerr.With(err, "root", root))
		return
	}
	defer func() {
		if err := source.Close(); err != nil {
			s.logger.Error(zerr.With(err, "root", root))
		}
	}()

	// Stop may have been requested while the source was opening.
	if ctx.Err() != nil {
		s.logger.Info(fmt.Sprintf("stopped watching %s", root))
		return
	}

	s.alive.Store(true)
	s.logger.Info(fmt.Sprintf("watching %s", root))
	s.notifyStatus(root, true)
	defer func() {
		s.alive.Store(false)
		s.notifyStatus(root, false)
	}()

	batches := source.Batches()
	errs := source.Errors()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(fmt.Sprintf("stopped watching %s", root))
			return

		case batch, ok := <-batches:
			if !ok {
				s.logger.Error(zerr.With(domain.ErrChannelDisconnected, "root", root))
				return
			}
			// A stop that raced with a ready batch wins.
			if ctx.Err() != nil {
				s.logger.Info(fmt.Sprintf("stopped watching %s", root))
				return
			}
			s.handleBatch(ctx, root, batch)

		case err, ok := <-errs:
			if !ok {
				// The error channel closes together with batches; wait for that.
				errs = nil
				continue
			}
			s.logger.Warn(err.Error())
		}
	}
}

func (s *Supervisor) notifyStatus(root string, alive bool) {
	if s.observer != nil {
		s.observer.OnSessionStatus(root, alive)
	}
}

// handleBatch emits one notification per matching path that resolves to an entity.
func (s *Supervisor) handleBatch(ctx context.Context, root string, batch ports.WatchBatch) {
	ctx, span := s.tracer.Start(ctx, domain.BatchSpanName)
	defer span.End()

	span.SetAttribute(domain.AttrSessionRoot, root)
	span.SetAttribute(domain.AttrBatchSize, len(batch))

	emitted := 0
	for _, event := range batch {
		if filepath.Base(event.Path) != s.fileName {
			continue
		}

		entity, ok := ResolveEntity(root, event.Path)
		if !ok {
			continue
		}

		n := domain.NewNotification(entity, event.Path, s.now())
		if err := s.sink.Emit(ctx, n); err != nil {
			if errors.Is(err, domain.ErrNoSubscribers) {
				s.logger.Warn(fmt.Sprintf("no subscribers for %s change of %s", domain.WBSChangedEvent, entity))
				continue
			}
			err = zerr.With(zerr.Wrap(err, domain.ErrEmitFailed.Error()), "entity", entity)
			span.RecordError(err)
			s.logger.Error(err)
			continue
		}
		emitted++
		s.notifications.Add(1)
	}

	span.SetAttribute(domain.AttrBatchEmitted, emitted)
}
