package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
)

type TariffCache interface {
	Get(ctx context.Context, id int64) (*domain.Tariff, error)
	Set(ctx context.Context, t *domain.Tariff) error
	Invalidate(ctx context.Context, id int64) error
}

// TariffService reads tariffs through the cache. Cache failures only cost a
// store round trip; they are logged and never returned.
type TariffService struct {
	store Store
	cache TariffCache
}

// Get returns the tariff or nil if it does not exist.
func (s *TariffService) Get(ctx context.Context, id int64) (*domain.Tariff, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			log.Warn().Err(err).Int64("bandeira_id", id).Msg("tariff cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	t, err := s.store.GetTariff(ctx, id)
	if err != nil || t == nil {
		return t, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, t); err != nil {
			log.Warn().Err(err).Int64("bandeira_id", id).Msg("tariff cache write failed")
		}
	}
	return t, nil
}

// Update replaces the tariff's name and rates. It returns nil if the tariff
// does not exist.
func (s *TariffService) Update(ctx context.Context, t domain.Tariff) (*domain.Tariff, error) {
	updated, err := s.store.UpdateTariff(ctx, t)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, t.ID); err != nil {
			log.Warn().Err(err).Int64("bandeira_id", t.ID).Msg("tariff cache invalidate failed")
		}
	}
	return updated, nil
}
