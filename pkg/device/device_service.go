package device

import (
	"context"

	"github.com/google/uuid"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/entities"
	"github.com/maximebaudoin/expired-products/pkg/jwt"
)

type (
	DeviceService interface {
		RegisterDevice(ctx context.Context, req domain.RegisterDeviceRequest) (domain.RegisterDeviceResponse, error)
	}

	deviceService struct {
		deviceRepository DeviceRepository
		jwtService       jwt.JWTService
	}
)

func NewDeviceService(deviceRepository DeviceRepository, jwtService jwt.JWTService) DeviceService {
	return &deviceService{
		deviceRepository: deviceRepository,
		jwtService:       jwtService,
	}
}

// RegisterDevice stores the app instance's push token and hands back the
// token the app authenticates subsequent calls with. The push token is an
// opaque credential, never inspected.
func (s *deviceService) RegisterDevice(ctx context.Context, req domain.RegisterDeviceRequest) (domain.RegisterDeviceResponse, error) {
	device := &entities.Device{
		ID:        uuid.New(),
		PushToken: req.PushToken,
		ProjectID: req.ProjectID,
		Platform:  req.Platform,
	}

	if err := s.deviceRepository.CreateDevice(ctx, device); err != nil {
		return domain.RegisterDeviceResponse{}, err
	}

	return domain.RegisterDeviceResponse{
		DeviceID: device.ID.String(),
		Token:    s.jwtService.GenerateTokenDevice(device.ID.String()),
	}, nil
}
