package product

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/entities"
	"github.com/maximebaudoin/expired-products/internal/utils/mailing"
	"github.com/maximebaudoin/expired-products/pkg/classification"
	"github.com/maximebaudoin/expired-products/pkg/notification"
)

type (
	ProductService interface {
		AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, filters []string) ([]domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, id string) error
		SendExpiryDigest(ctx context.Context, toEmail string) error
	}

	productService struct {
		store    ProductStore
		notifier notification.NotificationService
		now      func() time.Time
	}
)

func NewProductService(store ProductStore, notifier notification.NotificationService) ProductService {
	return &productService{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// AddProduct validates the chosen date, persists the record and requests a
// push notification near the expiration. Scheduling failures are logged and
// swallowed: the save must succeed on its own.
func (s *productService) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.ProductResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Day < 1 || req.Day > daysInMonth(req.Year, req.Month) {
		return domain.ProductResponse{}, domain.ErrInvalidDate
	}

	now := s.now()
	record := entities.ProductRecord{
		// id is the barcode concatenated with the millisecond timestamp
		ID:       fmt.Sprintf("%s%d", req.Ean, now.UnixMilli()),
		Ean:      req.Ean,
		Name:     req.Name,
		Brands:   req.Brands,
		ImageURL: req.ImageURL,
		Date: entities.ExpirationDate{
			Day:   req.Day,
			Month: req.Month,
			Year:  req.Year,
		},
	}

	if err := s.store.Add(ctx, record); err != nil {
		return domain.ProductResponse{}, err
	}

	if err := s.notifier.ScheduleExpiryNotification(ctx, record); err != nil {
		log.Printf("scheduling expiry notification for %s: %v", record.ID, err)
	}

	return toResponse(ClassifiedRecord{Record: record, Result: classification.Classify(record.Date, now)}), nil
}

// GetProducts classifies every stored record against the current instant,
// applies the urgency filter and returns the display ordering.
func (s *productService) GetProducts(ctx context.Context, filters []string) ([]domain.ProductResponse, error) {
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	classified := make([]ClassifiedRecord, 0, len(records))
	for _, record := range records {
		classified = append(classified, ClassifiedRecord{
			Record: record,
			Result: classification.Classify(record.Date, now),
		})
	}

	classified = SortByExpiration(FilterByColor(classified, filters))

	responses := make([]domain.ProductResponse, 0, len(classified))
	for _, record := range classified {
		responses = append(responses, toResponse(record))
	}
	return responses, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	return s.store.RemoveByID(ctx, id)
}

// SendExpiryDigest mails a summary of products already expired or expiring
// within five days. Nothing is sent when no product is in those bands.
func (s *productService) SendExpiryDigest(ctx context.Context, toEmail string) error {
	responses, err := s.GetProducts(ctx, []string{classification.ColorDanger, classification.ColorNone})
	if err != nil {
		return err
	}
	if len(responses) == 0 {
		return nil
	}

	var body strings.Builder
	body.WriteString("<h2>Produits à consommer rapidement</h2><ul>")
	for _, p := range responses {
		body.WriteString(fmt.Sprintf(
			"<li><strong>%s</strong> — %02d/%02d/%d (%s)</li>",
			p.Name, p.Date.Day, p.Date.Month, p.Date.Year, p.Options.Content,
		))
	}
	body.WriteString("</ul>")

	return mailing.SendMail(toEmail, "Vos produits arrivent à expiration", body.String())
}

func toResponse(record ClassifiedRecord) domain.ProductResponse {
	return domain.ProductResponse{
		ID:       record.Record.ID,
		Ean:      record.Record.Ean,
		Name:     record.Record.Name,
		Brands:   record.Record.Brands,
		ImageURL: record.Record.ImageURL,
		Date: domain.ProductDate{
			Day:   record.Record.Date.Day,
			Month: record.Record.Date.Month,
			Year:  record.Record.Date.Year,
		},
		Options: domain.ProductOptions{
			Color:   record.Result.Color,
			Content: record.Result.Content,
		},
	}
}

// daysInMonth applies the Gregorian leap-year rule: February has 29 days
// when the year is divisible by 4 and not by 100, or divisible by 400.
func daysInMonth(year, month int) int {
	if month == 2 {
		isLeap := year%4 == 0 && (year%100 != 0 || year%400 == 0)
		if isLeap {
			return 29
		}
		return 28
	}
	return [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}[month-1]
}
