package leadcapture

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/phbpx/leadcapture/metrics"
)

const (
	msgRegistered = "Lead registered successfully"
	msgRetrieved  = "Lead retrieved successfully"
)

// Registrar is the entry point for lead registration. It validates the
// payload, persists it and wraps the outcome in a Response.
type Registrar struct {
	validator *Validator
	store     LeadStore
	log       *zap.SugaredLogger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithLogger sets the logger used to report failures.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Registrar) {
		r.log = log
	}
}

// WithMetrics sets the registration metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registrar) {
		r.metrics = m
	}
}

// NewRegistrar builds a Registrar from its collaborators.
func NewRegistrar(v *Validator, store LeadStore, opts ...Option) *Registrar {
	r := Registrar{
		validator: v,
		store:     store,
		log:       zap.NewNop().Sugar(),
		tracer:    otel.GetTracerProvider().Tracer("leadcapture"),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return &r
}

// Register validates and stores a new lead. Validation failures never reach
// the store.
func (r *Registrar) Register(ctx context.Context, nl NewLead) Response {
	ctx, span := r.tracer.Start(ctx, "leadcapture.register")
	defer span.End()

	start := time.Now()
	nl = normalize(nl)

	if err := r.validator.Validate(nl); err != nil {
		return r.fail(span, start, "Register", err)
	}

	lead, err := r.store.Create(ctx, nl)
	if err != nil {
		return r.fail(span, start, "Register", err)
	}

	span.SetAttributes(
		attribute.Int64("lead.id", lead.ID),
		attribute.Int("lead.service_interests", len(lead.ServiceInterest)),
	)
	r.metrics.ObserveRegistration(metrics.OutcomeSuccess, time.Since(start))
	r.log.Infow("Register", "lead_id", lead.ID, "service_interests", len(lead.ServiceInterest))

	return Success(lead, msgRegistered, http.StatusCreated)
}

// Lookup returns the lead with the given id.
func (r *Registrar) Lookup(ctx context.Context, id int64) Response {
	ctx, span := r.tracer.Start(ctx, "leadcapture.lookup")
	defer span.End()
	span.SetAttributes(attribute.Int64("lead.id", id))

	if id <= 0 {
		err := ValidationError("id must be a positive integer", map[string]string{"id": "id must be a positive integer"})
		span.SetStatus(codes.Error, err.Message)
		return Failure(err)
	}

	lead, err := r.store.GetByID(ctx, id)
	if err != nil {
		if KindOf(err) == KindInternal {
			r.log.Errorw("Lookup", "lead_id", id, "error", err.Error())
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, string(KindOf(err)))
		return Failure(err)
	}

	return Success(lead, msgRetrieved, http.StatusOK)
}

func (r *Registrar) fail(span trace.Span, start time.Time, op string, err error) Response {
	kind := KindOf(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(kind))
	r.metrics.ObserveRegistration(string(kind), time.Since(start))

	if kind == KindInternal {
		r.log.Errorw(op, "error", err.Error())
	} else {
		r.log.Infow(op, "status", "rejected", "kind", kind, "reason", err.Error())
	}

	return Failure(err)
}

func normalize(nl NewLead) NewLead {
	nl.Name = strings.TrimSpace(nl.Name)
	nl.Email = strings.TrimSpace(nl.Email)
	nl.Mobile = strings.TrimSpace(nl.Mobile)
	nl.PostCode = strings.TrimSpace(nl.PostCode)
	return nl
}
