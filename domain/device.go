package domain

import (
	"errors"
)

var (
	MessageSuccessRegisterDevice = "device registered successfully"
	MessageFailedRegisterDevice  = "failed to register device"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrPushTokenNotFound = errors.New("no push notification token registered")
)

type (
	RegisterDeviceRequest struct {
		PushToken string `json:"push_token" validate:"required"`
		ProjectID string `json:"project_id" validate:"required"`
		Platform  string `json:"platform"`
	}

	RegisterDeviceResponse struct {
		DeviceID string `json:"device_id"`
		Token    string `json:"token"`
	}
)
