package product

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/entities"
	"github.com/maximebaudoin/expired-products/pkg/classification"
)

type stubNotifier struct {
	calls   int
	lastRec entities.ProductRecord
	err     error
}

func (s *stubNotifier) ScheduleExpiryNotification(ctx context.Context, record entities.ProductRecord) error {
	s.calls++
	s.lastRec = record
	return s.err
}

func newTestService(t *testing.T) (*productService, *memoryRepo, *stubNotifier) {
	t.Helper()
	repo := newMemoryRepo()
	notifier := &stubNotifier{}
	service := NewProductService(NewProductStore(repo), notifier).(*productService)
	service.now = func() time.Time {
		return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	}
	return service, repo, notifier
}

func TestAddProductPersistsAndNotifies(t *testing.T) {
	service, _, notifier := newTestService(t)

	res, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Ean:      "3017620422003",
		Name:     "Nutella",
		Brands:   "Ferrero",
		ImageURL: "https://images.example/nutella.jpg",
		Day:      20,
		Month:    3,
		Year:     2025,
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.ID, "3017620422003"), "id starts with the ean")
	require.Greater(t, len(res.ID), len("3017620422003"))
	require.Equal(t, classification.ColorOk, res.Options.Color)

	records, err := service.store.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, res.ID, records[0].ID)

	require.Equal(t, 1, notifier.calls)
	require.Equal(t, res.ID, notifier.lastRec.ID)
}

func TestAddProductInvalidDate(t *testing.T) {
	service, repo, notifier := newTestService(t)

	_, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Ean:   "3017620422003",
		Name:  "Nutella",
		Day:   29,
		Month: 2,
		Year:  2023,
	})
	require.ErrorIs(t, err, domain.ErrInvalidDate)
	require.Zero(t, repo.puts, "nothing written")
	require.Zero(t, notifier.calls, "no notification attempted")
}

func TestAddProductLeapDayAccepted(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Ean: "3017620422003", Name: "Nutella", Day: 29, Month: 2, Year: 2024,
	})
	require.NoError(t, err)
}

func TestAddProductNotificationFailureDoesNotBlockSave(t *testing.T) {
	service, _, notifier := newTestService(t)
	notifier.err = errors.New("scheduler unreachable")

	_, err := service.AddProduct(context.Background(), domain.AddProductRequest{
		Ean: "3017620422003", Name: "Nutella", Day: 20, Month: 3, Year: 2025,
	})
	require.NoError(t, err)

	records, err := service.store.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestGetProductsClassifiesFiltersAndSorts(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	store := service.store
	require.NoError(t, store.Add(ctx, entities.ProductRecord{
		ID: "far", Ean: "1", Name: "Conserve",
		Date: entities.ExpirationDate{Day: 1, Month: 6, Year: 2025},
	}))
	require.NoError(t, store.Add(ctx, entities.ProductRecord{
		ID: "expired", Ean: "2", Name: "Yaourt",
		Date: entities.ExpirationDate{Day: 20, Month: 2, Year: 2025},
	}))
	require.NoError(t, store.Add(ctx, entities.ProductRecord{
		ID: "soon", Ean: "3", Name: "Lait",
		Date: entities.ExpirationDate{Day: 3, Month: 3, Year: 2025},
	}))

	all, err := service.GetProducts(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"expired", "soon", "far"}, responseIDs(all))
	require.Equal(t, classification.LabelExpired, all[0].Options.Content)
	require.Equal(t, classification.ColorNone, all[0].Options.Color)
	require.Equal(t, classification.ColorDanger, all[1].Options.Color)
	require.Equal(t, classification.ColorOk, all[2].Options.Color)

	urgent, err := service.GetProducts(ctx, []string{classification.ColorNone, classification.ColorDanger})
	require.NoError(t, err)
	require.Equal(t, []string{"expired", "soon"}, responseIDs(urgent))
}

func TestDeleteProductUnknownIDIsNoop(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.store.Add(ctx, entities.ProductRecord{ID: "keep"}))
	require.NoError(t, service.DeleteProduct(ctx, "unknown"))

	records, err := service.store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2025, 1, 31},
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, daysInMonth(tc.year, tc.month), "year=%d month=%d", tc.year, tc.month)
	}
}

func responseIDs(responses []domain.ProductResponse) []string {
	out := make([]string, 0, len(responses))
	for _, r := range responses {
		out = append(out, r.ID)
	}
	return out
}
