package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximebaudoin/expired-products/domain"
)

func TestResolveNamePriority(t *testing.T) {
	cases := []struct {
		name    string
		product domain.CatalogProduct
		want    string
	}{
		{
			name: "abbreviated fr wins over everything",
			product: domain.CatalogProduct{
				AbbreviatedProductNameFr: "Nutella 1kg",
				GenericNameFr:            "Pâte à tartiner",
				ProductName:              "Nutella hazelnut spread",
			},
			want: "Nutella 1kg",
		},
		{
			name: "generic fr wins over product name",
			product: domain.CatalogProduct{
				GenericNameFr: "Pâte à tartiner aux noisettes",
				ProductName:   "Nutella",
			},
			want: "Pâte à tartiner aux noisettes",
		},
		{
			name: "generic wins over product name fr",
			product: domain.CatalogProduct{
				GenericName:   "Hazelnut spread",
				ProductNameFr: "Nutella",
			},
			want: "Hazelnut spread",
		},
		{
			name:    "product name as last resort",
			product: domain.CatalogProduct{ProductName: "Nutella"},
			want:    "Nutella",
		},
		{
			name:    "placeholder when no candidate is set",
			product: domain.CatalogProduct{Brands: "Ferrero"},
			want:    "-",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveName(tc.product))
		})
	}
}
