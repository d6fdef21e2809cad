package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/pkg/catalog"
)

type stubCatalog struct {
	products map[string]domain.CatalogProduct
}

func (s stubCatalog) LookupProduct(ctx context.Context, ean string) (domain.CatalogProduct, error) {
	product, ok := s.products[ean]
	if !ok {
		return domain.CatalogProduct{}, domain.ErrProductNotFound
	}
	return product, nil
}

var _ catalog.CatalogService = stubCatalog{}

func TestScanBarcodeResolvesName(t *testing.T) {
	service := NewScanService(stubCatalog{products: map[string]domain.CatalogProduct{
		"3017620422003": {
			ID:            "3017620422003",
			Brands:        "Ferrero",
			GenericNameFr: "Pâte à tartiner",
			ProductName:   "Nutella",
			ImageFrontURL: "https://images.example/nutella.jpg",
		},
	}})

	res, err := service.ScanBarcode(context.Background(), "device-1", "3017620422003")
	require.NoError(t, err)
	require.Equal(t, "3017620422003", res.Ean)
	require.Equal(t, "Pâte à tartiner", res.Name)
	require.Equal(t, "Ferrero", res.Brands)
	require.NotEmpty(t, res.SessionID)
}

func TestScanBarcodeNotFound(t *testing.T) {
	service := NewScanService(stubCatalog{})

	_, err := service.ScanBarcode(context.Background(), "device-1", "0000000000000")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestStaleScanResultDiscarded(t *testing.T) {
	service := NewScanService(stubCatalog{}).(*scanService)

	firstSeq, _ := service.beginScan("device-1")
	// a newer scan arrives before the first lookup resolves
	secondSeq, _ := service.beginScan("device-1")

	require.False(t, service.applyScan("device-1", firstSeq))
	require.True(t, service.applyScan("device-1", secondSeq))
}

func TestScanSequencesIndependentPerDevice(t *testing.T) {
	service := NewScanService(stubCatalog{}).(*scanService)

	seqA, _ := service.beginScan("device-a")
	seqB, _ := service.beginScan("device-b")

	require.True(t, service.applyScan("device-a", seqA))
	require.True(t, service.applyScan("device-b", seqB))
}
