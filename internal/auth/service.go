package auth

import (
	"context"
	"errors"

	"github.com/daehantax/fund-match/internal/ingest"
	"github.com/daehantax/fund-match/internal/models"
)

// ErrClientNotFound is the normal miss outcome of a BRN lookup. It drives a
// distinct "not a registered client" response, never a server error.
var ErrClientNotFound = errors.New("client not found")

// Service verifies visitors against the cached client ledger.
type Service struct {
	loader *ingest.Loader
}

func NewService(loader *ingest.Loader) *Service {
	return &Service{loader: loader}
}

// Verify looks up a business registration number in the client ledger and
// builds a session for the matched client. Both the query and the stored
// value are reduced to digits before comparison, so "680-82-00118" and
// "6808200118" resolve identically.
func (s *Service) Verify(ctx context.Context, brn string) (*models.UserSession, error) {
	clients, err := s.loader.LoadClients(ctx)
	if err != nil {
		return nil, err
	}

	normalized := ingest.NormalizeBRN(brn)
	if normalized == "" {
		return nil, ErrClientNotFound
	}

	for _, client := range clients {
		if ingest.NormalizeBRN(client.BizNumber) != normalized {
			continue
		}
		return &models.UserSession{
			Type:        models.SessionClient,
			Identifier:  client.BizNumber,
			Industry:    ingest.MapIndustry(client.BizCategory),
			Region:      ingest.MapRegion(client.Address),
			CompanyName: client.CompanyName,
			CEOName:     client.CEOName,
		}, nil
	}

	return nil, ErrClientNotFound
}
