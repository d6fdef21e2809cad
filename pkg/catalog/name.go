package catalog

import (
	"github.com/maximebaudoin/expired-products/domain"
)

// ResolveName picks the display name from the candidate fields in priority
// order: abbreviated name (fr, then generic), generic name (fr, then
// generic), product name (fr, then generic). Falls back to "-" when every
// candidate is empty.
func ResolveName(product domain.CatalogProduct) string {
	candidates := []string{
		product.AbbreviatedProductNameFr,
		product.AbbreviatedProductName,
		product.GenericNameFr,
		product.GenericName,
		product.ProductNameFr,
		product.ProductName,
	}

	for _, name := range candidates {
		if name != "" {
			return name
		}
	}
	return "-"
}
