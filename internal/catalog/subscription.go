package catalog

import (
	"context"
	"sync"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
	"github.com/luisferxd1/nexxo-business-sub001/internal/repository"
)

// Subscription is a live view over the product catalog. Each change-stream
// event triggers a fresh query; the newest snapshot replaces any snapshot
// the consumer has not picked up yet (last-write-wins). Close is safe to
// call more than once and guarantees the underlying stream is released.
type Subscription struct {
	updates chan []domain.Product
	cancel  context.CancelFunc
	once    sync.Once
}

// Updates delivers catalog snapshots. The channel is closed after Close,
// or when the subscription context ends.
func (s *Subscription) Updates() <-chan []domain.Product {
	return s.updates
}

func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// Subscribe opens a change stream on the products collection and pumps
// catalog snapshots into the returned subscription. The initial snapshot is
// delivered before the first change event.
func (s *Service) Subscribe(ctx context.Context) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := s.products.Watch(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	sub := &Subscription{
		updates: make(chan []domain.Product, 1),
		cancel:  cancel,
	}

	go s.pump(ctx, stream, sub)
	return sub, nil
}

func (s *Service) pump(ctx context.Context, stream repository.ChangeStream, sub *Subscription) {
	defer close(sub.updates)
	defer func() {
		if err := stream.Close(context.Background()); err != nil {
			s.log.Warn().Err(err).Msg("failed to close product change stream")
		}
	}()

	s.publish(sub, s.snapshot(ctx))

	for stream.Next(ctx) {
		s.publish(sub, s.snapshot(ctx))
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		s.log.Error().Err(err).Msg("product change stream ended")
	}
}

func (s *Service) snapshot(ctx context.Context) []domain.Product {
	products, err := s.products.Products(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn().Err(err).Msg("failed to refresh catalog snapshot")
		}
		return nil
	}
	return products
}

// publish replaces an undelivered snapshot instead of blocking the pump.
func (s *Service) publish(sub *Subscription, snapshot []domain.Product) {
	if snapshot == nil {
		return
	}
	for {
		select {
		case sub.updates <- snapshot:
			return
		default:
			select {
			case <-sub.updates:
			default:
			}
		}
	}
}
