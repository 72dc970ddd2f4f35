package contact

import (
	"net/http"

	"atelier/infras/otel"
	"atelier/internal/domains/contact/model/dto"
	"atelier/internal/domains/contact/service"
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
	service service.ContactMessage
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.ContactMessage, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/contact", func(r chi.Router) {
		r.Post("/", handler.CreateContactMessage)

		r.Group(func(r chi.Router) {
			r.Use(handler.auth.Auth)
			r.Get("/", handler.GetContactMessages)
			r.Get("/{id}", handler.GetContactMessageByID)
			r.Patch("/{id}/read", handler.MarkContactMessageRead)
			r.Delete("/{id}", handler.DeleteContactMessage)
		})
	})
}

// CreateContactMessage accepts a public contact form submission.
// @Summary Submit a contact message
// @Description Create a contact message from the public contact form.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Create Contact Message Request"
// @Success 201 {object} dto.CreateContactMessageResponse "Message received"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contact [post]
func (handler *Handler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContactMessage")
	defer scope.End()

	req := dto.CreateContactMessageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetContactMessages retrieves the contact inbox.
// @Summary Get all contact messages
// @Description Retrieve contact messages with an optional read-state filter.
// @Tags Contact
// @Accept json
// @Produce json
// @Param isRead query bool false "Filter by read state"
// @Success 200 {object} dto.GetContactMessagesResponse "List of contact messages"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contact [get]
// @Security BearerAuth
func (handler *Handler) GetContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = constant.DefaultValueSortBy
		queryParams.SortDir = constant.DefaultValueSortDir
	}

	filterGroup := dto.BuildFilter(shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamIsRead)))

	messages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}

// GetContactMessageByID retrieves a contact message by its ID.
// @Summary Get a contact message by ID
// @Description Retrieve a contact message by its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Success 200 {object} dto.ContactMessageResponse "Contact message details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contact/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContactMessageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactMessageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	message, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact message by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message retrieved successfully")

	response.WithJSON(w, http.StatusOK, message)
}

// MarkContactMessageRead marks a contact message as read.
// @Summary Mark a contact message as read
// @Description Flag a contact message as read. Repeating the call is a no-op.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Success 200 {object} response.Message "Contact message marked as read"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contact/{id}/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkContactMessageRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark contact message as read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message marked as read")

	response.WithMessage(w, http.StatusOK, "Contact message marked as read")
}

// DeleteContactMessage deletes a contact message by its ID.
// @Summary Delete a contact message by ID
// @Description Delete a contact message using its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Success 200 {object} response.Data[any] "Deletion acknowledged"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/contact/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContactMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact message")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Contact message deleted successfully by admin " + admin)

	response.WithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
