package service

import (
	"context"
	"errors"

	"reciclame-api/internal/cache"
	"reciclame-api/internal/patch"
	"reciclame-api/internal/repo/repo_errors"
)

// Cache key prefixes, one per resource.
const (
	pessoaPrefix      = "pessoa"
	empresaPrefix     = "empresa"
	cooperativaPrefix = "cooperativa"
	tipoResiduoPrefix = "tipo-residuo"
	pontoColetaPrefix = "ponto-coleta"
	residuoPrefix     = "residuo"
	coletaPrefix      = "coleta"
)

// cachedGet reads through the cache and converts a missing row into notFound.
func cachedGet[T any](ctx context.Context, c *cache.Cache, key string, load cache.FetchFn[*T], notFound error) (*T, error) {
	v, err := cache.GetOrFetch(ctx, c, key, load)
	if err != nil {
		return nil, mapRepoError(err, notFound)
	}

	return v, nil
}

// patchAndInvalidate validates body against schema, applies it and drops the cached entry.
// The cache is untouched when the update fails.
func patchAndInvalidate(ctx context.Context, c *cache.Cache, key string, schema patch.Schema, body map[string]any,
	update func(ctx context.Context, changes map[string]any) error, notFound error) error {
	changes, err := schema.Changes(body)
	if err != nil {
		return err
	}

	if err := update(ctx, changes); err != nil {
		return mapRepoError(err, notFound)
	}

	c.Invalidate(ctx, key)

	return nil
}

func deleteAndInvalidate(ctx context.Context, c *cache.Cache, key string, del func(ctx context.Context) error, notFound error) error {
	if err := del(ctx); err != nil {
		return mapRepoError(err, notFound)
	}

	c.Invalidate(ctx, key)

	return nil
}

func mapRepoError(err error, notFound error) error {
	switch {
	case errors.Is(err, repo_errors.ErrNotFound):
		return notFound
	case errors.Is(err, repo_errors.ErrAlreadyExists):
		return ErrAlreadyExists
	case errors.Is(err, repo_errors.ErrInvalidReference):
		return ErrInvalidReference
	case errors.Is(err, repo_errors.ErrInvalidValue):
		return ErrInvalidValue
	}

	return err
}
