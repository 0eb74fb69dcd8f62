package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/phbpx/leadcapture"
)

// Checker reports whether a dependency is usable.
type Checker func(ctx context.Context) error

type HealthHandler struct {
	check Checker
	log   *zap.SugaredLogger
}

func NewHealthHandler(check Checker, log *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{
		check: check,
		log:   log,
	}
}

// Readiness checks the store is ready and if not will return a 500 status.
func (hh HealthHandler) Readiness(rw http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()

	if err := hh.check(ctx); err != nil {
		hh.log.Errorw("Readiness", "status", "store not ready", "error", err.Error())
		respond(ctx, rw, leadcapture.Failure(err))
		return
	}

	respond(ctx, rw, leadcapture.Success(nil, "ok", http.StatusOK))
}
