// Package service is the caller-facing boundary of the lead pipeline. Every
// operation takes the caller's access tier as a parameter; identity lives in
// the hosting application, never here.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bizleads/local-leads/internal/export"
	"github.com/bizleads/local-leads/internal/gate"
	"github.com/bizleads/local-leads/internal/mail"
	"github.com/bizleads/local-leads/internal/model"
	"github.com/bizleads/local-leads/internal/pipeline"
)

// Response is the structured result of any service operation. OK is false
// only for pipeline-level failures; Message then carries the single
// human-readable reason. Complete is false when some leads may be partial
// because the run deadline fired. Leads is always present in the serialized
// form, as an empty array when there is nothing to return, so clients can
// read it unconditionally.
type Response struct {
	OK       bool         `json:"ok"`
	Message  string       `json:"message,omitempty"`
	Leads    []model.Lead `json:"leads"`
	Complete bool         `json:"complete"`
}

// failure builds an error response. Leads is an empty array, not null.
func failure(message string) Response {
	return Response{OK: false, Message: message, Leads: []model.Lead{}}
}

// Service wires the pipeline, gate, exporters, and mailer behind the three
// caller-facing operations.
type Service struct {
	pipeline     *pipeline.Pipeline
	caps         gate.Caps
	mailer       mail.Mailer
	radiusMeters int
}

// New creates a Service. radiusMeters is the settings-derived search radius,
// already converted to the upstream's unit.
func New(p *pipeline.Pipeline, caps gate.Caps, mailer mail.Mailer, radiusMeters int) *Service {
	return &Service{
		pipeline:     p,
		caps:         caps,
		mailer:       mailer,
		radiusMeters: radiusMeters,
	}
}

// run executes the pipeline and folds pipeline-level failures into a
// structured response.
func (s *Service) run(ctx context.Context, location, industry string) (*pipeline.Result, *Response) {
	query := model.NewSearchQuery(location, industry)
	result, err := s.pipeline.Run(ctx, query, s.radiusMeters)
	if err != nil {
		resp := failure(failureMessage(err))
		return nil, &resp
	}
	return result, nil
}

// failureMessage maps a pipeline error to the message shown to callers.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, pipeline.ErrValidation):
		return "Missing parameters."
	case errors.Is(err, pipeline.ErrResolution):
		return "could not resolve location"
	case errors.Is(err, pipeline.ErrSearch):
		return "place search failed"
	default:
		return "lead search failed"
	}
}

// Search runs the pipeline and returns the tier-gated lead set. Zero
// candidates is success with zero leads, so callers can tell "nothing
// nearby" from "upstream broken".
func (s *Service) Search(ctx context.Context, tier model.AccessTier, location, industry string) Response {
	result, failure := s.run(ctx, location, industry)
	if failure != nil {
		return *failure
	}
	return Response{
		OK:       true,
		Leads:    s.caps.Apply(result.Leads, tier),
		Complete: result.Complete,
	}
}

// ExportEmail runs the pipeline ungated and mails the full result set to
// recipient. The permission check happens before any upstream call so an
// unauthorized request costs nothing.
func (s *Service) ExportEmail(ctx context.Context, tier model.AccessTier, location, industry, recipient string) Response {
	if !gate.CanEmailExport(tier) {
		zap.L().Warn("service: email export denied",
			zap.String("tier", tier.String()),
			zap.Error(pipeline.ErrAuthorization),
		)
		return failure("Insufficient permissions.")
	}

	result, failResp := s.run(ctx, location, industry)
	if failResp != nil {
		return *failResp
	}

	body := export.Email(result.Leads)
	if err := s.mailer.Send(ctx, recipient, export.EmailSubject, body); err != nil {
		zap.L().Error("service: email export send failed",
			zap.String("recipient", recipient),
			zap.Error(err),
		)
		return failure("failed to send email")
	}

	return Response{
		OK:       true,
		Message:  fmt.Sprintf("Email sent to %s", recipient),
		Leads:    []model.Lead{},
		Complete: result.Complete,
	}
}

// ExportCSV runs the pipeline ungated and returns the full lead set; the
// caller renders the CSV file itself. The permission check happens before
// any upstream call.
func (s *Service) ExportCSV(ctx context.Context, tier model.AccessTier, location, industry string) Response {
	if !gate.CanCSVExport(tier) {
		zap.L().Warn("service: csv export denied",
			zap.String("tier", tier.String()),
			zap.Error(pipeline.ErrAuthorization),
		)
		return failure("Insufficient permissions for CSV download.")
	}

	result, failure := s.run(ctx, location, industry)
	if failure != nil {
		return *failure
	}
	return Response{
		OK:       true,
		Leads:    result.Leads,
		Complete: result.Complete,
	}
}
