package notification

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maximebaudoin/expired-products/domain"
	"github.com/maximebaudoin/expired-products/entities"
	"github.com/maximebaudoin/expired-products/internal/utils/storage"
	"github.com/maximebaudoin/expired-products/pkg/device"
)

// parisTimeZone is the fixed reference timezone expiration instants are
// normalized to before transmission, regardless of where the server runs.
const parisTimeZone = "Europe/Paris"

type (
	// NotificationService builds the signed scheduling request the remote
	// scheduler verifies with the shared secret. Every failure here is
	// non-fatal to the scan flow: callers log and move on.
	NotificationService interface {
		ScheduleExpiryNotification(ctx context.Context, record entities.ProductRecord) error
	}

	notificationService struct {
		deviceRepository device.DeviceRepository
		s3               storage.AwsS3
		schedulerURL     string
		secret           string
		client           *http.Client
	}
)

type (
	payloadProduct struct {
		Name           string `json:"name"`
		ThumbnailURL   string `json:"thumbnailUrl"`
		ExpirationDate string `json:"expirationDate"`
	}

	payloadUser struct {
		PushNotificationToken string `json:"pushNotificationToken"`
	}

	// Payload is serialized once; the signature covers those exact bytes.
	Payload struct {
		Product payloadProduct `json:"product"`
		User    payloadUser    `json:"user"`
	}
)

func NewNotificationService(deviceRepository device.DeviceRepository, s3 storage.AwsS3, schedulerURL, secret string) NotificationService {
	return &notificationService{
		deviceRepository: deviceRepository,
		s3:               s3,
		schedulerURL:     schedulerURL,
		secret:           secret,
		client:           &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *notificationService) ScheduleExpiryNotification(ctx context.Context, record entities.ProductRecord) error {
	latest, err := s.deviceRepository.GetLatestDevice(ctx)
	if err != nil {
		return err
	}
	if latest == nil || latest.PushToken == "" {
		return domain.ErrPushTokenNotFound
	}

	thumbnailURL := record.ImageURL
	if s.s3 != nil {
		if mirrored, err := s.s3.MirrorImage(ctx, record.ID, record.ImageURL); err == nil {
			thumbnailURL = mirrored
		}
	}

	body, err := BuildExpiryPayload(record.Name, thumbnailURL, record.Date, latest.PushToken)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.schedulerURL+"/product", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-signature", Sign(body, s.secret))

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("scheduler returned %s: %s", resp.Status, string(detail))
	}
	return nil
}

// BuildExpiryPayload serializes the scheduling payload with the expiration
// date normalized to midnight in the Paris reference timezone.
func BuildExpiryPayload(name, thumbnailURL string, date entities.ExpirationDate, pushToken string) ([]byte, error) {
	loc, err := time.LoadLocation(parisTimeZone)
	if err != nil {
		return nil, err
	}

	midnight := time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, loc)

	return json.Marshal(Payload{
		Product: payloadProduct{
			Name:           name,
			ThumbnailURL:   thumbnailURL,
			ExpirationDate: midnight.Format(time.RFC3339),
		},
		User: payloadUser{
			PushNotificationToken: pushToken,
		},
	})
}

// Sign computes the lowercase hex HMAC-SHA256 of the exact payload bytes.
// The receiver recomputes it from the raw request body, so the bytes sent
// must be the bytes signed.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
