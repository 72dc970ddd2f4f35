package service

import (
	"context"
	"fmt"

	"atelier/config"
	"atelier/infras/otel"
	"atelier/internal/domains/contact/model"
	"atelier/internal/domains/contact/model/dto"
	"atelier/internal/domains/contact/repository"
	"atelier/shared"
	"atelier/shared/constant"
	gDto "atelier/shared/dto"
	"atelier/shared/failure"
	"atelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const publicActor = "public"

type ContactMessage interface {
	Create(ctx context.Context, req dto.CreateContactMessageRequest) (dto.CreateContactMessageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactMessagesResponse, error)
	Get(ctx context.Context, id string) (dto.ContactMessageResponse, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.ContactMessage
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.ContactMessage, cfg *config.Config, otel otel.Otel) ContactMessage {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactMessageRequest) (res dto.CreateContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := req.ToModel(publicActor)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to create contact message")

		return res, fmt.Errorf("failed to create contact message: %w", err)
	}

	res.OK = true
	res.Message = "message received"
	res.ID = message.ID

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")

		return res, fmt.Errorf("failed to count contact messages: %w", err)
	}

	messages, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	res.FromModels(messages, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return res, fmt.Errorf("failed to get contact message: %w", err)
	}

	if message.ID == constant.Empty {
		return res, failure.NotFound("contact message not found")
	}

	res.FromModel(message)

	return res, nil
}

// MarkRead flips the read flag in a single statement. Repeating the call on
// an already-read message affects the row again and stays a no-op success.
func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	updatedFields := map[string]any{
		model.FieldIsRead:        true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: admin,
	}

	affected, err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to mark contact message as read")

		return fmt.Errorf("failed to mark contact message as read: %w", err)
	}

	if affected == 0 {
		log.Error().Str("id", id).Msg("contact message not found")

		return failure.NotFound("contact message not found")
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete contact message")

		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	if affected == 0 {
		log.Error().Str("id", id).Msg("contact message not found")

		return failure.NotFound("contact message not found")
	}

	return nil
}
