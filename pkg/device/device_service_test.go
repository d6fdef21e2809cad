package device

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/entities"
)

type stubRepo struct {
	created *entities.Device
	err     error
}

func (s *stubRepo) CreateDevice(ctx context.Context, device *entities.Device) error {
	s.created = device
	return s.err
}

func (s *stubRepo) GetDeviceByID(ctx context.Context, id string) (*entities.Device, error) {
	return s.created, nil
}

func (s *stubRepo) GetLatestDevice(ctx context.Context) (*entities.Device, error) {
	return s.created, nil
}

type stubJWT struct{}

func (stubJWT) GenerateTokenDevice(deviceID string) string { return "token-for-" + deviceID }
func (stubJWT) ValidateTokenDevice(string) (*jwt.Token, error) { return nil, nil }
func (stubJWT) GetDeviceIDByToken(token string) (string, error) { return "", nil }

func TestRegisterDevice(t *testing.T) {
	repo := &stubRepo{}
	service := NewDeviceService(repo, stubJWT{})

	res, err := service.RegisterDevice(context.Background(), domain.RegisterDeviceRequest{
		PushToken: "ExponentPushToken[abc]",
		ProjectID: "expired-products",
		Platform:  "ios",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.DeviceID)
	require.Equal(t, "token-for-"+res.DeviceID, res.Token)

	require.NotNil(t, repo.created)
	require.Equal(t, "ExponentPushToken[abc]", repo.created.PushToken)
	require.Equal(t, "expired-products", repo.created.ProjectID)
}

func TestRegisterDeviceRepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("database unavailable")}
	service := NewDeviceService(repo, stubJWT{})

	_, err := service.RegisterDevice(context.Background(), domain.RegisterDeviceRequest{
		PushToken: "tok",
		ProjectID: "expired-products",
	})
	require.Error(t, err)
}
