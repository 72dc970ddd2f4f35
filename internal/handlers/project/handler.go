package project

import (
	"net/http"

	"atelier/infras/otel"
	"atelier/internal/domains/project/model/dto"
	"atelier/internal/domains/project/service"
	"atelier/shared"
	"atelier/shared/constant"
	gDto "atelier/shared/dto"
	"atelier/shared/validator"
	"atelier/transport/http/middleware"
	"atelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Project
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Project, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", handler.GetProjects)
		r.Get("/{id}", handler.GetProjectByID)

		r.Group(func(r chi.Router) {
			r.Use(handler.auth.Auth)
			r.Post("/", handler.CreateProject)
			r.Patch("/{id}", handler.UpdateProject)
			r.Delete("/{id}", handler.DeleteProject)
		})
	})
}

// CreateProject handles the creation of a new portfolio project.
// @Summary Create a new project
// @Description Create a new project with the provided details.
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Create Project Request"
// @Success 201 {object} dto.ProjectResponse "Project created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/projects [post]
// @Security BearerAuth
func (handler *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProject")
	defer scope.End()

	req := dto.CreateProjectRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create project")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Project created successfully by admin " + admin)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetProjects retrieves projects with optional filtering.
// @Summary Get all projects
// @Description Retrieve projects with optional title search, category and published filters.
// @Tags Project
// @Accept json
// @Produce json
// @Param title query string false "Search term matched against title or description"
// @Param categoryId query string false "Filter by category ID"
// @Param onlyPublished query bool false "Restrict to published projects"
// @Success 200 {object} dto.GetProjectsResponse "List of projects"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/projects [get]
func (handler *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjects")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = constant.DefaultValueSortBy
		queryParams.SortDir = constant.DefaultValueSortDir
	}

	query := r.URL.Query()
	filterGroup := dto.BuildFilter(
		query.Get(constant.RequestParamTitle),
		query.Get(constant.RequestParamCategoryID),
		shared.ConvertStringToBool(query.Get(constant.RequestParamOnlyPublished)),
	)

	projects, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get projects")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Projects retrieved successfully")

	response.WithJSON(w, http.StatusOK, projects)
}

// GetProjectByID retrieves a project by its ID.
// @Summary Get a project by ID
// @Description Retrieve a project by its unique identifier.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse "Project details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/projects/{id} [get]
func (handler *Handler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	project, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get project by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project retrieved successfully")

	response.WithJSON(w, http.StatusOK, project)
}

// UpdateProject applies a partial update to an existing project.
// @Summary Update a project by ID
// @Description Update any subset of project fields.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Update Project Request"
// @Success 200 {object} dto.ProjectResponse "Updated project"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/projects/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProjectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update project")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Project updated successfully by admin " + admin)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteProject deletes a project by its ID.
// @Summary Delete a project by ID
// @Description Delete a project using its unique identifier.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Data[any] "Deletion acknowledged"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/projects/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete project")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Project deleted successfully by admin " + admin)

	response.WithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
