package service

import (
	"context"
	"fmt"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/repo"
)

type DiagnosticsService struct {
	diagnosticsRepo repo.Diagnostics
	cache           *cache.Cache
}

func NewDiagnosticsService(repos *repo.Repositories, c *cache.Cache) *DiagnosticsService {
	return &DiagnosticsService{
		diagnosticsRepo: repos.Diagnostics,
		cache:           c,
	}
}

func (s *DiagnosticsService) Ping(ctx context.Context) error {
	if err := s.diagnosticsRepo.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := s.cache.Ping(ctx); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	return nil
}
