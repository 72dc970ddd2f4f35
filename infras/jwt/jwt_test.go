package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/config"
	"atelier/infras/jwt"
)

func testService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "atelier"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60 * 24 * 7

	return jwt.New(cfg)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)
}

func TestValidateToken(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		tokenType jwt.TokenType
		wantErr   error
	}{
		{
			name:      "valid access token",
			token:     pair.AccessToken,
			tokenType: jwt.AccessToken,
		},
		{
			name:      "valid refresh token",
			token:     pair.RefreshToken,
			tokenType: jwt.RefreshToken,
		},
		{
			name:      "refresh token rejected as access token",
			token:     pair.RefreshToken,
			tokenType: jwt.AccessToken,
			wantErr:   jwt.ErrInvalidToken,
		},
		{
			name:      "garbage token",
			token:     "not.a.token",
			tokenType: jwt.AccessToken,
			wantErr:   jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token, tt.tokenType)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin-1", claims.AdminID)
			assert.Equal(t, "admin@example.com", claims.Email)
			assert.Equal(t, tt.tokenType, claims.Type)
			assert.NotEmpty(t, claims.TokenID)
		})
	}
}

func TestRefreshTokens(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin-1", "admin@example.com", "Admin")
	require.NoError(t, err)

	newPair, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)

	claims, err := svc.ValidateToken(newPair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
