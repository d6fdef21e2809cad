package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximebaudoin/expired-products/domain"
)

func newTestJWTService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "EXPIREDPRODUCTS"}
}

func TestGenerateAndReadDeviceToken(t *testing.T) {
	service := newTestJWTService()

	token := service.GenerateTokenDevice("device-123")
	require.NotEmpty(t, token)

	deviceID, err := service.GetDeviceIDByToken(token)
	require.NoError(t, err)
	require.Equal(t, "device-123", deviceID)
}

func TestGetDeviceIDByTokenRejectsGarbage(t *testing.T) {
	service := newTestJWTService()

	_, err := service.GetDeviceIDByToken("not.a.token")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetDeviceIDByTokenRejectsWrongSecret(t *testing.T) {
	token := (&jwtService{secretKey: "other-secret", issuer: "EXPIREDPRODUCTS"}).GenerateTokenDevice("device-123")

	_, err := newTestJWTService().GetDeviceIDByToken(token)
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}
