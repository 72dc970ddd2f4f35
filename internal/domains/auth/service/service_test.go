package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"atelier/config"
	"atelier/infras/jwt"
	jwtMocks "atelier/infras/jwt/mocks"
	"atelier/infras/otel/mocks"
	"atelier/internal/domains/auth/model/dto"
	"atelier/internal/domains/auth/service"
	"atelier/shared/failure"
	"atelier/shared/password"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Admin = config.Admin{
		ID:           "admin-1",
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: hash,
	}

	return cfg
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		cfg       *config.Config
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			cfg:  testConfig(t),
			req:  dto.LoginRequest{Email: "admin@example.com", Password: "correct horse battery staple"},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair("admin-1", "admin@example.com", "Admin").
					Return(tokenPair, nil)
			},
			wantErr: false,
		},
		{
			name:      "wrong password",
			cfg:       testConfig(t),
			req:       dto.LoginRequest{Email: "admin@example.com", Password: "wrong"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "unknown email",
			cfg:       testConfig(t),
			req:       dto.LoginRequest{Email: "intruder@example.com", Password: "correct horse battery staple"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "admin credentials not configured",
			cfg:       &config.Config{},
			req:       dto.LoginRequest{Email: "admin@example.com", Password: "correct horse battery staple"},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			svc := service.New(tt.cfg, mockOtel, mockJWT)
			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 401, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
				assert.Equal(t, "admin-1", res.Admin.ID)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(testConfig(t), mockOtel, mockJWT)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("refresh-token").
					Return(nil, errors.New("token is malformed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 401, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access", res.AccessToken)
			}
		})
	}
}
