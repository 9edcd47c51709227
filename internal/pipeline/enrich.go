package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bizleads/local-leads/internal/contact"
	"github.com/bizleads/local-leads/internal/model"
	"github.com/bizleads/local-leads/pkg/places"
)

// ContactFetcher fetches a contact page body. Satisfied by contact.Fetcher.
type ContactFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]byte, error)
}

// Enricher turns one candidate into a Lead. Its failure mode is degradation,
// not propagation: every upstream problem leaves fields empty and the Lead is
// still returned.
type Enricher struct {
	places       places.Client
	fetcher      ContactFetcher
	fetchTimeout time.Duration
}

// NewEnricher creates an Enricher. fetchTimeout bounds each of the two
// outbound calls independently.
func NewEnricher(client places.Client, fetcher ContactFetcher, fetchTimeout time.Duration) *Enricher {
	return &Enricher{
		places:       client,
		fetcher:      fetcher,
		fetchTimeout: fetchTimeout,
	}
}

// Enrich fetches details and scans the contact page for one candidate. It
// issues at most two outbound HTTP calls, sequentially, and never returns an
// error: name and address from the candidate are always populated.
func (e *Enricher) Enrich(ctx context.Context, c model.PlaceCandidate) model.Lead {
	lead := model.Lead{
		Name:    c.Name,
		Address: c.Address,
	}

	detailsCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	details, err := e.places.Details(detailsCtx, c.ExternalID)
	cancel()
	if err != nil {
		zap.L().Debug("pipeline: details lookup degraded",
			zap.String("place", c.Name),
			zap.Error(err),
		)
		return lead
	}
	lead.Phone = details.Phone
	lead.Website = details.Website

	lead.ContactURL = contact.PageURL(details.Website)
	if lead.ContactURL == "" {
		return lead
	}

	fetchCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	body, err := e.fetcher.Fetch(fetchCtx, lead.ContactURL)
	cancel()
	if err != nil {
		zap.L().Debug("pipeline: contact page fetch degraded",
			zap.String("url", lead.ContactURL),
			zap.Error(err),
		)
		return lead
	}

	lead.Email = contact.ExtractEmail(body)
	return lead
}
