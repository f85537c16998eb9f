package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"studyspot/config"
	"studyspot/infras/otel"
	"studyspot/internal/domains/space/model"
	"studyspot/internal/domains/space/model/dto"
	"studyspot/internal/domains/space/repository"
	"studyspot/shared"
	"studyspot/shared/cache"
	"studyspot/shared/constant"
	"studyspot/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSpace     = "space:get"
	cacheGetAllSpaces = "space:gets"
)

type Space interface {
	GetAll(ctx context.Context, search string) (dto.GetSpacesResponse, error)
	Get(ctx context.Context, id int) (dto.SpaceResponse, error)
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Space {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll lists the catalog, optionally narrowed by a case-insensitive
// name/location substring search.
func (s *serviceImpl) GetAll(ctx context.Context, search string) (res dto.GetSpacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllSpaces, search)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for spaces")

		return res, nil
	}

	spaces, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get spaces")

		return res, fmt.Errorf("failed to get spaces: %w", err)
	}

	res.FromModels(filterSpaces(spaces, search))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save spaces to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.SpaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSpace, strconv.Itoa(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for space")

		return res, nil
	}

	space, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return res, fmt.Errorf("failed to get space: %w", err)
	}

	if !ok {
		return res, failure.NotFound("space not found") // nolint:wrapcheck
	}

	res.FromModel(space)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save space to cache")
		}
	}()

	return res, nil
}

func filterSpaces(spaces []model.Space, search string) []model.Space {
	if search == "" {
		return spaces
	}

	needle := strings.ToLower(search)
	filtered := make([]model.Space, 0, len(spaces))

	for _, space := range spaces {
		if strings.Contains(strings.ToLower(space.Name), needle) ||
			strings.Contains(strings.ToLower(space.Location), needle) {
			filtered = append(filtered, space)
		}
	}

	return filtered
}
