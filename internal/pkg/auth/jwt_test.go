package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "campusrecords.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, err := service.GenerateToken(1, "2021-00412", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ProfileID)
	assert.Equal(t, "2021-00412", claims.StudentID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "campusrecords.test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	token, err := service.GenerateToken(1, "2021-00412", "student")
	require.NoError(t, err)

	_, err = service.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(time.Hour)
	token, err := issuer.GenerateToken(1, "2021-00412", "student")
	require.NoError(t, err)

	verifier := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusrecords.test",
	})

	_, err = verifier.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateAndExtractClaims("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}

func TestValidateToken_RejectsNonPositiveProfileID(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, err := service.GenerateToken(0, "2021-00412", "student")
	require.NoError(t, err)

	_, err = service.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing scheme", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc.def.ghi", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
