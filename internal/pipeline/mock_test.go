package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/rotisserie/eris"

	"github.com/bizleads/local-leads/pkg/places"
)

// stubPlaces is an in-memory places.Client that counts calls, so tests can
// assert which upstream work actually happened.
type stubPlaces struct {
	mu           sync.Mutex
	geocodeCalls int
	searchCalls  int
	detailsCalls int

	point      places.GeoPoint
	geocodeErr error

	candidates []places.Candidate
	searchErr  error

	details      map[string]places.Details
	detailsErr   map[string]error
	detailsDelay map[string]time.Duration
}

func (s *stubPlaces) Geocode(ctx context.Context, location string) (*places.GeoPoint, error) {
	s.mu.Lock()
	s.geocodeCalls++
	s.mu.Unlock()
	if s.geocodeErr != nil {
		return nil, s.geocodeErr
	}
	p := s.point
	return &p, nil
}

func (s *stubPlaces) NearbySearch(ctx context.Context, center places.GeoPoint, keyword string, radiusMeters int) ([]places.Candidate, error) {
	s.mu.Lock()
	s.searchCalls++
	s.mu.Unlock()
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.candidates, nil
}

func (s *stubPlaces) Details(ctx context.Context, placeID string) (*places.Details, error) {
	s.mu.Lock()
	s.detailsCalls++
	delay := s.detailsDelay[placeID]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if err, ok := s.detailsErr[placeID]; ok {
		return nil, err
	}
	if d, ok := s.details[placeID]; ok {
		return &d, nil
	}
	return nil, eris.Errorf("stub: unknown place %s", placeID)
}

// stubFetcher maps contact URLs to page bodies.
type stubFetcher struct {
	mu     sync.Mutex
	calls  int
	bodies map[string]string
	errs   map[string]error
}

func (f *stubFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if err, ok := f.errs[pageURL]; ok {
		return nil, err
	}
	if body, ok := f.bodies[pageURL]; ok {
		return []byte(body), nil
	}
	return nil, eris.Errorf("stub: no page for %s", pageURL)
}

func newTestPipeline(sp *stubPlaces, sf *stubFetcher, workers int, deadline time.Duration) *Pipeline {
	enricher := NewEnricher(sp, sf, 2*time.Second)
	return New(sp, enricher, "test-key", workers, deadline)
}
