package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
)

type CooperativaService struct {
	cooperativaRepo repo.Cooperativa
	cache           *cache.Cache
}

func NewCooperativaService(repos *repo.Repositories, c *cache.Cache) *CooperativaService {
	return &CooperativaService{
		cooperativaRepo: repos.Cooperativa,
		cache:           c,
	}
}

func (s *CooperativaService) GetCooperativas(ctx context.Context) ([]entity.Cooperativa, error) {
	return s.cooperativaRepo.GetCooperativas(ctx)
}

func (s *CooperativaService) GetCooperativaById(ctx context.Context, id int64) (*entity.Cooperativa, error) {
	return cachedGet(ctx, s.cache, cache.Key(cooperativaPrefix, id), func(ctx context.Context) (*entity.Cooperativa, error) {
		return s.cooperativaRepo.GetCooperativaById(ctx, id)
	}, ErrCooperativaNotFound)
}

func (s *CooperativaService) CreateCooperativa(ctx context.Context, input *entity.CreateCooperativaInput) (int64, error) {
	id, err := s.cooperativaRepo.CreateCooperativa(ctx, input)
	if err != nil {
		return 0, mapRepoError(err, ErrCooperativaNotFound)
	}

	return id, nil
}

func (s *CooperativaService) UpdateCooperativa(ctx context.Context, id int64, body map[string]any) error {
	return patchAndInvalidate(ctx, s.cache, cache.Key(cooperativaPrefix, id), entity.CooperativaSchema, body,
		func(ctx context.Context, changes map[string]any) error {
			return s.cooperativaRepo.UpdateCooperativa(ctx, id, changes)
		}, ErrCooperativaNotFound)
}

func (s *CooperativaService) DeleteCooperativa(ctx context.Context, id int64) error {
	return deleteAndInvalidate(ctx, s.cache, cache.Key(cooperativaPrefix, id), func(ctx context.Context) error {
		return s.cooperativaRepo.DeleteCooperativa(ctx, id)
	}, ErrCooperativaNotFound)
}
