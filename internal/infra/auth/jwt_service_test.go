package auth

import (
	"testing"
	"time"

	"commerce/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret))
	require.NoError(t, err)

	userID := uuid.New()

	tests := []struct {
		name      string
		token     func(t *testing.T) string
		wantErr   bool
		wantRoles []string
	}{
		{
			name: "valid access token with roles",
			token: func(t *testing.T) string {
				return signToken(t, testAccessSecret, jwt.MapClaims{
					"sub":   userID.String(),
					"exp":   time.Now().Add(time.Minute).Unix(),
					"type":  "access",
					"roles": []string{"customer", "admin"},
				})
			},
			wantRoles: []string{"customer", "admin"},
		},
		{
			name: "token without type is accepted",
			token: func(t *testing.T) string {
				return signToken(t, testAccessSecret, jwt.MapClaims{
					"sub": userID.String(),
					"exp": time.Now().Add(time.Minute).Unix(),
				})
			},
		},
		{
			name: "refresh token is rejected",
			token: func(t *testing.T) string {
				return signToken(t, testAccessSecret, jwt.MapClaims{
					"sub":  userID.String(),
					"exp":  time.Now().Add(time.Minute).Unix(),
					"type": "refresh",
				})
			},
			wantErr: true,
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signToken(t, testAccessSecret, jwt.MapClaims{
					"sub": userID.String(),
					"exp": time.Now().Add(-time.Minute).Unix(),
				})
			},
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, "another-secret", jwt.MapClaims{
					"sub": userID.String(),
					"exp": time.Now().Add(time.Minute).Unix(),
				})
			},
			wantErr: true,
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				return signToken(t, testAccessSecret, jwt.MapClaims{
					"sub": "not-a-uuid",
					"exp": time.Now().Add(time.Minute).Unix(),
				})
			},
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "invalid.token.here" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token(t))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, "access", claims.Type)
			assert.Equal(t, tt.wantRoles, claims.Roles)
		})
	}
}
