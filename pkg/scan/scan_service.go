package scan

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/pkg/catalog"
)

type (
	// ScanService runs the catalog lookup for a scanned barcode and guards
	// against a slow lookup overwriting the state of a newer scan: each
	// scan bumps a per-device sequence, and a result is applied only while
	// its sequence is still the current one.
	ScanService interface {
		ScanBarcode(ctx context.Context, deviceID string, barcode string) (domain.ScanResponse, error)
	}

	scanService struct {
		catalogService catalog.CatalogService

		mu       sync.Mutex
		sessions map[string]*scanSession
	}

	scanSession struct {
		seq       uint64
		sessionID string
	}
)

func NewScanService(catalogService catalog.CatalogService) ScanService {
	return &scanService{
		catalogService: catalogService,
		sessions:       make(map[string]*scanSession),
	}
}

func (s *scanService) ScanBarcode(ctx context.Context, deviceID string, barcode string) (domain.ScanResponse, error) {
	seq, sessionID := s.beginScan(deviceID)

	product, err := s.catalogService.LookupProduct(ctx, barcode)
	if err != nil {
		return domain.ScanResponse{}, err
	}

	if !s.applyScan(deviceID, seq) {
		return domain.ScanResponse{}, domain.ErrScanSuperseded
	}

	return domain.ScanResponse{
		SessionID: sessionID,
		Ean:       product.ID,
		Name:      catalog.ResolveName(product),
		Brands:    product.Brands,
		ImageURL:  product.ImageFrontURL,
	}, nil
}

// beginScan resets the device's transient scan state and returns the
// sequence the eventual result must present to be applied.
func (s *scanService) beginScan(deviceID string) (uint64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[deviceID]
	if !ok {
		session = &scanSession{}
		s.sessions[deviceID] = session
	}
	session.seq++
	session.sessionID = uuid.New().String()
	return session.seq, session.sessionID
}

// applyScan reports whether the result belongs to the device's latest scan.
// A stale result is simply discarded.
func (s *scanService) applyScan(deviceID string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[deviceID]
	return ok && session.seq == seq
}
