package service

import (
	"context"
	"fmt"

	"atelier/config"
	"atelier/infras/otel"
	categoryModel "atelier/internal/domains/category/model"
	categoryRepository "atelier/internal/domains/category/repository"
	"atelier/internal/domains/project/model"
	"atelier/internal/domains/project/model/dto"
	"atelier/internal/domains/project/repository"
	"atelier/shared"
	"atelier/shared/cache"
	"atelier/shared/constant"
	gDto "atelier/shared/dto"
	"atelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProject    = "project:get"
	cacheGetAllProject = "project:get_all"
	cacheCountProject  = "project:count"
)

type Project interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (dto.ProjectResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProjectsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ProjectResponse, error)
	Update(ctx context.Context, req dto.UpdateProjectRequest, id string) (dto.ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Project
	categories categoryRepository.Category
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Project, categories categoryRepository.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Project {
	return &serviceImpl{
		repo:       repo,
		categories: categories,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// ensureCategoryExists rejects references to unknown categories before a
// write reaches the database, so the caller gets a bad request instead of
// a surfaced constraint violation.
func (s *serviceImpl) ensureCategoryExists(ctx context.Context, id string) error {
	exists, err := s.categories.Exist(ctx, shared.FilterByID(id, categoryModel.FieldID, categoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check category")

		return fmt.Errorf("failed to check category: %w", err)
	}

	if !exists {
		log.Error().Str("categoryId", id).Msg("category not found")

		return failure.BadRequestFromString("category not found")
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProjectRequest) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureCategoryExists(ctx, req.CategoryID); err != nil {
		return res, err
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	project := req.ToModel(admin)

	if err = s.repo.Insert(ctx, project); err != nil {
		log.Error().Err(err).Msg("failed to create project")

		return res, fmt.Errorf("failed to create project: %w", err)
	}

	res.FromModel(project)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProject)
		shared.InvalidateCaches(c, s.cache, cacheCountProject)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProject, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for projects")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count projects")

		return res, err
	}

	projects, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get projects")

		return res, err
	}

	res.FromModels(projects, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save projects to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProject, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for project count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count projects")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save project count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProject, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for project")

		return res, nil
	}

	project, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return res, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == constant.Empty {
		return res, failure.NotFound("project not found")
	}

	res.FromModel(project)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save project to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProjectRequest, id string) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if req.CategoryID != constant.Empty {
		if err = s.ensureCategoryExists(ctx, req.CategoryID); err != nil {
			return res, err
		}
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(req, admin)
	if req.Gallery != nil {
		updatedFields[model.FieldGallery] = dto.SerializeGallery(*req.Gallery)
	}

	affected, err := s.repo.Update(ctx, updatedFields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update project")

		return res, fmt.Errorf("failed to update project: %w", err)
	}

	if affected == 0 {
		log.Error().Str("id", id).Msg("project not found")

		return res, failure.NotFound("project not found")
	}

	project, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated project")

		return res, fmt.Errorf("failed to get updated project: %w", err)
	}

	res.FromModel(project)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProject, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete project cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProject)
		shared.InvalidateCaches(c, s.cache, cacheCountProject)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete project")

		return fmt.Errorf("failed to delete project: %w", err)
	}

	if affected == 0 {
		log.Error().Str("id", id).Msg("project not found")

		return failure.NotFound("project not found")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProject, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete project cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProject)
		shared.InvalidateCaches(c, s.cache, cacheCountProject)
	}()

	return nil
}
