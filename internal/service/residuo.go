package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
)

type ResiduoService struct {
	residuoRepo repo.Residuo
	cache       *cache.Cache
}

func NewResiduoService(repos *repo.Repositories, c *cache.Cache) *ResiduoService {
	return &ResiduoService{
		residuoRepo: repos.Residuo,
		cache:       c,
	}
}

func (s *ResiduoService) GetResiduos(ctx context.Context) ([]entity.Residuo, error) {
	return s.residuoRepo.GetResiduos(ctx)
}

func (s *ResiduoService) GetResiduoById(ctx context.Context, id int64) (*entity.Residuo, error) {
	return cachedGet(ctx, s.cache, cache.Key(residuoPrefix, id), func(ctx context.Context) (*entity.Residuo, error) {
		return s.residuoRepo.GetResiduoById(ctx, id)
	}, ErrResiduoNotFound)
}

// RegisterResiduo also completes the collection, so its cached copy is dropped after commit.
func (s *ResiduoService) RegisterResiduo(ctx context.Context, input *entity.RegisterResiduoInput) (int64, error) {
	id, err := s.residuoRepo.RegisterResiduo(ctx, input)
	if err != nil {
		return 0, mapRepoError(err, ErrColetaNotFound)
	}

	s.cache.Invalidate(ctx, cache.Key(coletaPrefix, int64(input.IdColeta)))

	return id, nil
}

func (s *ResiduoService) UpdateResiduo(ctx context.Context, id int64, body map[string]any) error {
	return patchAndInvalidate(ctx, s.cache, cache.Key(residuoPrefix, id), entity.ResiduoSchema, body,
		func(ctx context.Context, changes map[string]any) error {
			return s.residuoRepo.UpdateResiduo(ctx, id, changes)
		}, ErrResiduoNotFound)
}

func (s *ResiduoService) DeleteResiduo(ctx context.Context, id int64) error {
	return deleteAndInvalidate(ctx, s.cache, cache.Key(residuoPrefix, id), func(ctx context.Context) error {
		return s.residuoRepo.DeleteResiduo(ctx, id)
	}, ErrResiduoNotFound)
}
