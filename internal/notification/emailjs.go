package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"photosite/internal/domain"
)

const emailjsEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJS sends the booking notification through the EmailJS REST API.
// When unconfigured it stays enabled as a no-op that logs a warning, so
// booking creation never depends on notification setup.
type EmailJS struct {
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
	httpc      *http.Client
	log        *zap.Logger
}

func NewEmailJS(serviceID, templateID, publicKey, privateKey string, log *zap.Logger) *EmailJS {
	return &EmailJS{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		privateKey: privateKey,
		httpc:      &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

func (e *EmailJS) Configured() bool {
	return e.serviceID != "" && e.templateID != "" && e.publicKey != ""
}

func (e *EmailJS) Send(ctx context.Context, b *domain.Booking) error {
	if !e.Configured() {
		e.log.Warn("emailjs not configured, booking notification skipped",
			zap.String("booking_id", b.ID))
		return nil
	}

	message := b.Message
	if message == "" {
		message = "No additional message"
	}

	payload := map[string]any{
		"service_id":  e.serviceID,
		"template_id": e.templateID,
		"user_id":     e.publicKey,
		"accessToken": e.privateKey,
		"template_params": map[string]string{
			"customer_name":  b.Name,
			"customer_phone": b.Phone,
			"customer_email": b.Email,
			"event_type":     b.EventType,
			"event_date":     b.Date,
			"message":        message,
			"booking_date":   b.CreatedAt.Format("January 2, 2006 15:04"),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, emailjsEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
