package domain

import (
	"errors"
)

var (
	MessageFailedScanSuperseded = "scan superseded by a newer scan"

	ErrScanSuperseded = errors.New("a newer scan replaced this one")
)

type (
	ScanRequest struct {
		Barcode string `json:"barcode" validate:"required"`
	}

	ScanResponse struct {
		SessionID string `json:"session_id"`
		Ean       string `json:"ean"`
		Name      string `json:"name"`
		Brands    string `json:"brands,omitempty"`
		ImageURL  string `json:"image_front_url,omitempty"`
	}
)
