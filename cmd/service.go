package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bizleads/local-leads/internal/contact"
	"github.com/bizleads/local-leads/internal/gate"
	"github.com/bizleads/local-leads/internal/mail"
	"github.com/bizleads/local-leads/internal/pipeline"
	"github.com/bizleads/local-leads/internal/service"
	"github.com/bizleads/local-leads/pkg/places"
)

// initService wires the places client, enricher, pipeline, gate, and mailer
// from config.
func initService(ctx context.Context) *service.Service {
	client := places.NewClient(cfg.Google.APIKey,
		places.WithRateLimit(cfg.Google.RateLimit),
	)

	fetchTimeout := time.Duration(cfg.Pipeline.FetchTimeoutSecs) * time.Second
	enricher := pipeline.NewEnricher(client, contact.NewFetcher(fetchTimeout), fetchTimeout)

	p := pipeline.New(client, enricher, cfg.Google.APIKey,
		cfg.Pipeline.Workers,
		time.Duration(cfg.Pipeline.TimeoutSecs)*time.Second,
	)

	caps := gate.Caps{
		Public:     cfg.Tiers.PublicCap,
		Registered: cfg.Tiers.RegisteredCap,
	}

	var mailer mail.Mailer = mail.Noop{}
	if cfg.Mail.Region != "" {
		sesMailer, err := mail.NewSESMailer(ctx, cfg.Mail.Region, cfg.Mail.Sender)
		if err != nil {
			zap.L().Warn("ses mailer init failed, email export disabled", zap.Error(err))
		} else {
			mailer = sesMailer
		}
	}

	return service.New(p, caps, mailer, cfg.Search.RadiusMeters())
}
