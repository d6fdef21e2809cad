package product

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/maximebaudoin/expired-products/entities"
)

// ProductsKey is the single namespaced key the whole collection lives under.
const ProductsKey = "@expiredproducts_products"

type (
	// ProductStore persists the product collection as one JSON array blob.
	// Add and RemoveByID are full read-modify-write cycles over that blob;
	// a mutex serializes them so no concurrent cycle silently drops a
	// record.
	ProductStore interface {
		ReadAll(ctx context.Context) ([]entities.ProductRecord, error)
		Add(ctx context.Context, record entities.ProductRecord) error
		RemoveByID(ctx context.Context, id string) error
	}

	productStore struct {
		repository StorageRepository
		mu         sync.Mutex
	}
)

func NewProductStore(repository StorageRepository) ProductStore {
	return &productStore{repository: repository}
}

func (s *productStore) ReadAll(ctx context.Context) ([]entities.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll(ctx)
}

func (s *productStore) Add(ctx context.Context, record entities.ProductRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll(ctx)
	if err != nil {
		return err
	}
	return s.writeAll(ctx, append(records, record))
}

func (s *productStore) RemoveByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]entities.ProductRecord, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	return s.writeAll(ctx, kept)
}

// readAll treats a corrupt blob as the empty collection. The unreadable
// data is overwritten on the next write.
func (s *productStore) readAll(ctx context.Context) ([]entities.ProductRecord, error) {
	entry, err := s.repository.GetEntry(ctx, ProductsKey)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return []entities.ProductRecord{}, nil
	}

	var records []entities.ProductRecord
	if err := json.Unmarshal([]byte(entry.Value), &records); err != nil {
		log.Printf("product store: %v, treating collection as empty", err)
		return []entities.ProductRecord{}, nil
	}
	return records, nil
}

func (s *productStore) writeAll(ctx context.Context, records []entities.ProductRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.repository.PutEntry(ctx, &entities.StorageEntry{Key: ProductsKey, Value: string(blob)})
}
