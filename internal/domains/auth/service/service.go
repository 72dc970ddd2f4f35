package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"atelier/config"
	"atelier/infras/jwt"
	"atelier/infras/otel"
	"atelier/internal/domains/auth/model/dto"
	"atelier/shared/constant"
	"atelier/shared/failure"
	"atelier/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

// serviceImpl authenticates against the single configured admin. The
// stored credential is a bcrypt hash; a missing credential rejects every
// attempt instead of falling through.
type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin := s.cfg.Admin

	if admin.Email == constant.Empty || admin.PasswordHash == constant.Empty {
		log.Error().Msg("admin credentials are not configured, rejecting login")

		return res, failure.Unauthorized("invalid email or password")
	}

	if subtle.ConstantTimeCompare([]byte(req.Email), []byte(admin.Email)) != 1 {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized("invalid email or password")
	}

	if err := password.Verify(req.Password, admin.PasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Email, admin.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Admin.FromConfig(admin)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
