package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/phbpx/leadcapture"
)

// Registrar is the lead use case the handlers expose.
type Registrar interface {
	Register(ctx context.Context, newLead leadcapture.NewLead) leadcapture.Response
	Lookup(ctx context.Context, id int64) leadcapture.Response
}

type LeadHandler struct {
	registrar Registrar
	log       *zap.SugaredLogger
}

func NewLeadHandler(registrar Registrar, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{
		registrar: registrar,
		log:       log,
	}
}

// Routes mounts the lead endpoints on r.
func (lh LeadHandler) Routes(r chi.Router) {
	r.Post("/", lh.Register)
	r.Get("/{id}", lh.GetByID)
}

func (lh LeadHandler) Register(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var newLead leadcapture.NewLead
	if err := decode(r, &newLead); err != nil {
		lh.log.Errorw("Register", "error", err.Error())
		respond(ctx, rw, leadcapture.Failure(
			leadcapture.ValidationError("request body must be a valid JSON object", nil),
		))
		return
	}

	respond(ctx, rw, lh.registrar.Register(ctx, newLead))
}

func (lh LeadHandler) GetByID(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		lh.log.Errorw("GetByID", "error", err.Error())
		respond(ctx, rw, leadcapture.Failure(
			leadcapture.ValidationError("ID is not in its proper form", map[string]string{"id": "id must be a positive integer"}),
		))
		return
	}

	respond(ctx, rw, lh.registrar.Lookup(ctx, id))
}
