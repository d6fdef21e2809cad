package domain

import (
	"errors"
)

var (
	MessageSuccessScanProduct = "product found"
	MessageFailedScanProduct  = "product not found"

	ErrProductNotFound = errors.New("product not found in catalog")
)

// CatalogProduct is the subset of an Open Food Facts product document the
// application reads. The name candidates feed the resolver in priority order.
type CatalogProduct struct {
	ID                       string `json:"_id"`
	Brands                   string `json:"brands"`
	ImageFrontURL            string `json:"image_front_url"`
	AbbreviatedProductNameFr string `json:"abbreviated_product_name_fr"`
	AbbreviatedProductName   string `json:"abbreviated_product_name"`
	GenericNameFr            string `json:"generic_name_fr"`
	GenericName              string `json:"generic_name"`
	ProductNameFr            string `json:"product_name_fr"`
	ProductName              string `json:"product_name"`
}
