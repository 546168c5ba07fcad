package service

import (
	"context"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/entity"
	"reciclame-api/internal/patch"
	"reciclame-api/internal/repo"
)

type ColetaService struct {
	coletaRepo repo.Coleta
	cache      *cache.Cache
}

func NewColetaService(repos *repo.Repositories, c *cache.Cache) *ColetaService {
	return &ColetaService{
		coletaRepo: repos.Coleta,
		cache:      c,
	}
}

func (s *ColetaService) GetColetas(ctx context.Context) ([]entity.Coleta, error) {
	return s.coletaRepo.GetColetas(ctx)
}

func (s *ColetaService) GetColetaById(ctx context.Context, id int64) (*entity.Coleta, error) {
	return cachedGet(ctx, s.cache, cache.Key(coletaPrefix, id), func(ctx context.Context) (*entity.Coleta, error) {
		return s.coletaRepo.GetColetaById(ctx, id)
	}, ErrColetaNotFound)
}

// CreateColeta schedules a new collection. Unknown person or point is ErrInvalidReference.
func (s *ColetaService) CreateColeta(ctx context.Context, input *entity.CreateColetaInput) (int64, error) {
	data, err := patch.ParseTimestamp(input.Data)
	if err != nil {
		return 0, ErrInvalidDate
	}

	id, err := s.coletaRepo.CreateColeta(ctx, &entity.Coleta{
		Data:    data,
		Status:  entity.ColetaAgendada,
		Cpf:     input.Cpf,
		IdPonto: int64(input.IdPonto),
	})
	if err != nil {
		return 0, mapRepoError(err, ErrColetaNotFound)
	}

	return id, nil
}

func (s *ColetaService) UpdateColeta(ctx context.Context, id int64, body map[string]any) error {
	return patchAndInvalidate(ctx, s.cache, cache.Key(coletaPrefix, id), entity.ColetaSchema, body,
		func(ctx context.Context, changes map[string]any) error {
			return s.coletaRepo.UpdateColeta(ctx, id, changes)
		}, ErrColetaNotFound)
}

func (s *ColetaService) DeleteColeta(ctx context.Context, id int64) error {
	return deleteAndInvalidate(ctx, s.cache, cache.Key(coletaPrefix, id), func(ctx context.Context) error {
		return s.coletaRepo.DeleteColeta(ctx, id)
	}, ErrColetaNotFound)
}

func (s *ColetaService) GetColetasResiduosByCpf(ctx context.Context, cpf string) ([]entity.ColetaResiduos, error) {
	return s.coletaRepo.GetColetasResiduosByCpf(ctx, cpf)
}
