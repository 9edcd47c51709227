// Package pipeline orchestrates one search-to-leads run: geocode, nearby
// search, then a bounded concurrent enrichment fan-out.
package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bizleads/local-leads/internal/model"
	"github.com/bizleads/local-leads/pkg/places"
)

// Result is the outcome of one pipeline run. Leads always has one entry per
// candidate, in the searcher's order. Complete is false when the run deadline
// fired before every enrichment finished; the affected leads carry only name
// and address.
type Result struct {
	Leads    []model.Lead
	Complete bool
}

// Pipeline runs the full search-to-leads flow. One invocation per inbound
// request; no state is shared across invocations.
type Pipeline struct {
	places   places.Client
	enricher *Enricher
	apiKey   string
	workers  int
	deadline time.Duration
}

// New creates a Pipeline. workers bounds the enrichment fan-out; deadline
// bounds the whole run.
func New(client places.Client, enricher *Enricher, apiKey string, workers int, deadline time.Duration) *Pipeline {
	if workers <= 0 {
		workers = 5
	}
	return &Pipeline{
		places:   client,
		enricher: enricher,
		apiKey:   apiKey,
		workers:  workers,
		deadline: deadline,
	}
}

// Run executes the pipeline for one query. Geocode and search failures abort
// the run; per-candidate enrichment failures degrade single leads and never
// propagate. An empty candidate set is success with zero leads.
func (p *Pipeline) Run(ctx context.Context, query model.SearchQuery, radiusMeters int) (*Result, error) {
	if query.Location == "" || query.Industry == "" || p.apiKey == "" {
		return nil, eris.Wrap(ErrValidation, "pipeline: validate query")
	}

	runID := uuid.NewString()
	log := zap.L().With(
		zap.String("run_id", runID),
		zap.String("location", query.Location),
		zap.String("industry", query.Industry),
	)
	log.Info("pipeline: starting run")

	point, err := p.places.Geocode(ctx, query.Location)
	if err != nil {
		log.Warn("pipeline: geocode failed", zap.Error(err))
		return nil, eris.Wrap(errors.Join(ErrResolution, err), "pipeline: geocode")
	}

	candidates, err := p.places.NearbySearch(ctx, *point, query.Industry, radiusMeters)
	if err != nil {
		log.Warn("pipeline: nearby search failed", zap.Error(err))
		return nil, eris.Wrap(errors.Join(ErrSearch, err), "pipeline: nearby search")
	}
	if len(candidates) == 0 {
		log.Info("pipeline: no candidates found")
		return &Result{Leads: []model.Lead{}, Complete: true}, nil
	}

	runCtx, cancel := context.WithTimeout(ctx, p.deadline)
	defer cancel()

	// Index-addressed slots keep output order equal to search order no
	// matter which enrichment finishes first. Every slot starts as a
	// name/address-only lead so a deadline expiry still emits one lead per
	// candidate.
	leads := make([]model.Lead, len(candidates))
	for i, c := range candidates {
		leads[i] = model.Lead{Name: c.Name, Address: c.Vicinity}
	}

	var unstarted atomic.Int64
	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(p.workers)

	for i, c := range candidates {
		i := i
		candidate := model.PlaceCandidate{
			ExternalID: c.PlaceID,
			Name:       c.Name,
			Address:    c.Vicinity,
		}
		g.Go(func() error {
			// Once the deadline fires, remaining candidates keep their
			// name/address-only slot.
			if gctx.Err() != nil {
				unstarted.Add(1)
				return nil
			}
			leads[i] = p.enricher.Enrich(gctx, candidate)
			return nil
		})
	}
	_ = g.Wait()

	complete := runCtx.Err() == nil
	if !complete {
		log.Warn("pipeline: deadline expired before all enrichments finished",
			zap.Int64("unstarted", unstarted.Load()),
		)
	}

	log.Info("pipeline: run complete",
		zap.Int("leads", len(leads)),
		zap.Bool("complete", complete),
	)
	return &Result{Leads: leads, Complete: complete}, nil
}
