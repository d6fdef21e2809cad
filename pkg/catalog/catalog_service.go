package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/maximebaudoin/expired-products/domain"
)

type (
	CatalogService interface {
		LookupProduct(ctx context.Context, ean string) (domain.CatalogProduct, error)
	}

	catalogService struct {
		baseURL string
		client  *http.Client
	}

	lookupResponse struct {
		Product *domain.CatalogProduct `json:"product"`
	}
)

func NewCatalogService(baseURL string) CatalogService {
	return &catalogService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// LookupProduct queries the open product database by barcode. Any transport
// failure, non-2xx status or missing product object collapses to
// ErrProductNotFound: the caller never builds a record from partial data.
func (s *catalogService) LookupProduct(ctx context.Context, ean string) (domain.CatalogProduct, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s", s.baseURL, ean)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.CatalogProduct{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("catalog lookup for %s failed: %v", ean, err)
		return domain.CatalogProduct{}, domain.ErrProductNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.CatalogProduct{}, domain.ErrProductNotFound
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("catalog response for %s unreadable: %v", ean, err)
		return domain.CatalogProduct{}, domain.ErrProductNotFound
	}

	if body.Product == nil {
		return domain.CatalogProduct{}, domain.ErrProductNotFound
	}

	return *body.Product, nil
}
