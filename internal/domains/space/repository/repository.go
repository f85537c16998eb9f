package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"os"
	"studyspot/config"
	"studyspot/infras/otel"
	"studyspot/internal/domains/space/model"
	"studyspot/shared/constant"

	"github.com/rs/zerolog/log"
)

// Catalog reads the static space listing document. A missing or malformed
// document degrades to an empty catalog; browsing must keep working with
// zero spaces rather than surface the fetch failure.
type Catalog interface {
	GetAll(ctx context.Context) ([]model.Space, error)
	Get(ctx context.Context, id int) (model.Space, bool, error)
	Exist(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	path string
	otel otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Catalog {
	return &repositoryImpl{
		path: cfg.Catalog.Path,
		otel: ot,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (spaces []model.Space, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("path", r.path).Msg("failed to read space catalog, serving empty listing")

		return []model.Space{}, nil
	}

	if err = json.Unmarshal(raw, &spaces); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("path", r.path).Msg("failed to parse space catalog, serving empty listing")

		return []model.Space{}, nil
	}

	return spaces, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Space, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	spaces, err := r.GetAll(ctx)
	if err != nil {
		return model.Space{}, false, err
	}

	for _, space := range spaces {
		if space.ID == id {
			return space, true, nil
		}
	}

	return model.Space{}, false, nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id int) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Exist")
	defer scope.End()

	_, ok, err := r.Get(ctx, id)

	return ok, err
}
