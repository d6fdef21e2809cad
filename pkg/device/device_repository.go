package device

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/maximebaudoin/expired-products/entities"
)

type (
	DeviceRepository interface {
		CreateDevice(ctx context.Context, device *entities.Device) error
		GetDeviceByID(ctx context.Context, id string) (*entities.Device, error)
		GetLatestDevice(ctx context.Context) (*entities.Device, error)
	}

	deviceRepository struct {
		db *gorm.DB
	}
)

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) CreateDevice(ctx context.Context, device *entities.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *deviceRepository) GetDeviceByID(ctx context.Context, id string) (*entities.Device, error) {
	var device entities.Device
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// GetLatestDevice returns the most recently registered device. The app is
// single user, so the latest registration carries the live push token.
func (r *deviceRepository) GetLatestDevice(ctx context.Context) (*entities.Device, error) {
	var device entities.Device
	if err := r.db.WithContext(ctx).Order("created_at desc").First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &device, nil
}
