package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/shared/constant"
)

const sendPath = "/v1/send"

type BookingConfirmation struct {
	To            string `json:"to"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	EntryName     string `json:"entry_name"`
	BookingDate   string `json:"booking_date"`
	GuestCount    int    `json:"guest_count"`
	TotalPrice    int64  `json:"total_price"`
	AmountPaid    int64  `json:"amount_paid"`
	BookingStatus string `json:"booking_status"`
	Notes         string `json:"notes"`
}

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, req BookingConfirmation) error
}

type mailerImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	timeout := time.Duration(cfg.External.Mailer.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &mailerImpl{
		cfg:  cfg,
		otel: otl,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendRequest struct {
	From     string              `json:"from"`
	To       []string            `json:"to"`
	Bcc      []string            `json:"bcc,omitempty"`
	Subject  string              `json:"subject"`
	Template string              `json:"template"`
	Payload  BookingConfirmation `json:"payload"`
}

// SendBookingConfirmation delivers the confirmation through the transactional
// email provider. The caller decides whether a failure matters; bookings are
// never rolled back over a mail error.
func (m *mailerImpl) SendBookingConfirmation(ctx context.Context, req BookingConfirmation) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".SendBookingConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !m.cfg.External.Mailer.Enable {
		log.Info().Str("to", req.To).Msg("mailer disabled, skipping booking confirmation")

		return nil
	}

	if req.To == constant.Empty {
		log.Warn().Str("customer", req.CustomerName).Msg("booking has no customer email, skipping confirmation")

		return nil
	}

	payload := sendRequest{
		From:     m.cfg.External.Mailer.Sender,
		To:       []string{req.To},
		Subject:  fmt.Sprintf("Booking confirmation: %s on %s", req.EntryName, req.BookingDate),
		Template: "booking-confirmation",
		Payload:  req,
	}

	if m.cfg.External.Mailer.OperationsCopy != constant.Empty {
		payload.Bcc = []string{m.cfg.External.Mailer.OperationsCopy}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal booking confirmation: %w", err)
	}

	url := m.cfg.External.Mailer.BaseURL + sendPath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mailer request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	httpReq.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+m.cfg.External.Mailer.APIKey)

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call mailer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mailer responded with status %d", resp.StatusCode)
	}

	log.Info().Str("to", req.To).Str("entry", req.EntryName).Msg("booking confirmation sent")

	return nil
}
