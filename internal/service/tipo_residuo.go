package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/repo"
)

type TipoResiduoService struct {
	tipoResiduoRepo repo.TipoResiduo
	cache           *cache.Cache
}

func NewTipoResiduoService(repos *repo.Repositories, c *cache.Cache) *TipoResiduoService {
	return &TipoResiduoService{
		tipoResiduoRepo: repos.TipoResiduo,
		cache:           c,
	}
}

func (s *TipoResiduoService) GetTiposResiduos(ctx context.Context) ([]entity.TipoResiduo, error) {
	return s.tipoResiduoRepo.GetTiposResiduos(ctx)
}

func (s *TipoResiduoService) GetTipoResiduoById(ctx context.Context, id int64) (*entity.TipoResiduo, error) {
	return cachedGet(ctx, s.cache, cache.Key(tipoResiduoPrefix, id), func(ctx context.Context) (*entity.TipoResiduo, error) {
		return s.tipoResiduoRepo.GetTipoResiduoById(ctx, id)
	}, ErrTipoResiduoNotFound)
}

func (s *TipoResiduoService) CreateTipoResiduo(ctx context.Context, input *entity.CreateTipoResiduoInput) (int64, error) {
	id, err := s.tipoResiduoRepo.CreateTipoResiduo(ctx, input)
	if err != nil {
		return 0, mapRepoError(err, ErrTipoResiduoNotFound)
	}

	return id, nil
}

func (s *TipoResiduoService) UpdateTipoResiduo(ctx context.Context, id int64, body map[string]any) error {
	return patchAndInvalidate(ctx, s.cache, cache.Key(tipoResiduoPrefix, id), entity.TipoResiduoSchema, body,
		func(ctx context.Context, changes map[string]any) error {
			return s.tipoResiduoRepo.UpdateTipoResiduo(ctx, id, changes)
		}, ErrTipoResiduoNotFound)
}

func (s *TipoResiduoService) DeleteTipoResiduo(ctx context.Context, id int64) error {
	return deleteAndInvalidate(ctx, s.cache, cache.Key(tipoResiduoPrefix, id), func(ctx context.Context) error {
		return s.tipoResiduoRepo.DeleteTipoResiduo(ctx, id)
	}, ErrTipoResiduoNotFound)
}
