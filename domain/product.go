package domain

import (
	"errors"
)

var (
	MessageSuccessAddProduct    = "product added successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessSendDigest    = "expiry digest sent successfully"

	MessageFailedAddProduct    = "failed to add product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedSendDigest    = "failed to send expiry digest"
	MessageFailedInvalidDate   = "invalid expiration date"

	ErrInvalidDate    = errors.New("day does not exist in the chosen month")
	ErrStorageCorrupt = errors.New("stored product collection is not valid JSON")
)

type (
	AddProductRequest struct {
		Ean      string `json:"ean" validate:"required"`
		Name     string `json:"name" validate:"required"`
		Brands   string `json:"brands"`
		ImageURL string `json:"image_front_url"`
		Day      int    `json:"day" validate:"required,min=1,max=31"`
		Month    int    `json:"month" validate:"required,min=1,max=12"`
		Year     int    `json:"year" validate:"required,min=1970"`
	}

	ProductDate struct {
		Day   int `json:"day"`
		Month int `json:"month"`
		Year  int `json:"year"`
	}

	// ProductOptions is the urgency badge computed for display, never stored.
	ProductOptions struct {
		Color   string `json:"color"`
		Content string `json:"content"`
	}

	ProductResponse struct {
		ID       string         `json:"_id"`
		Ean      string         `json:"ean"`
		Name     string         `json:"name"`
		Brands   string         `json:"brands,omitempty"`
		ImageURL string         `json:"image_front_url,omitempty"`
		Date     ProductDate    `json:"date"`
		Options  ProductOptions `json:"options"`
	}

	SendDigestRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
