// Package inquiry forwards general consultation requests to an external
// notification webhook. Delivery is fire-and-forget: the caller gets a
// receipt saying the submission was accepted, never a delivery guarantee.
package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/daehantax/fund-match/internal/models"
)

// Receipt acknowledges an inquiry submission. DeliveryConfirmed stays false
// even on a successful webhook call; the downstream channel gives no
// end-to-end acknowledgement we could honestly report.
type Receipt struct {
	Submitted         bool `json:"submitted"`
	DeliveryConfirmed bool `json:"delivery_confirmed"`
}

// ErrWebhookUnreachable marks a transport-level failure reaching the webhook.
// It surfaces to the caller once; there is no retry.
var ErrWebhookUnreachable = errors.New("inquiry webhook unreachable")

// Submitter sanitizes and forwards inquiries. With no webhook URL configured
// it accepts submissions and logs them locally.
type Submitter struct {
	webhookURL string
	client     *http.Client
	policy     *bluemonday.Policy
}

func NewSubmitter() *Submitter {
	return &Submitter{
		webhookURL: strings.TrimSpace(os.Getenv("INQUIRY_WEBHOOK_URL")),
		client:     &http.Client{Timeout: 10 * time.Second},
		policy:     bluemonday.StrictPolicy(),
	}
}

// Submit sanitizes the free-text field, posts the inquiry to the webhook when
// one is configured, and returns a receipt. A transport failure reaching the
// webhook is returned to the caller; a webhook that answered but with an
// unexpected status is logged and swallowed, since the submission did arrive
// somewhere.
func (s *Submitter) Submit(ctx context.Context, inq models.GeneralInquiry) (Receipt, error) {
	inq.RequestDetails = s.policy.Sanitize(inq.RequestDetails)

	if s.webhookURL == "" {
		log.Printf("[inquiry] webhook not configured, inquiry from %s recorded locally only", inq.Name)
		return Receipt{Submitted: true}, nil
	}

	if err := s.deliver(ctx, inq); err != nil {
		log.Printf("[inquiry] webhook delivery failed: %v", err)
		if errors.Is(err, ErrWebhookUnreachable) {
			return Receipt{}, err
		}
	}
	return Receipt{Submitted: true}, nil
}

func (s *Submitter) deliver(ctx context.Context, inq models.GeneralInquiry) error {
	payload, err := json.Marshal(inq)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWebhookUnreachable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
