package handlers

import (
	"net/http"

	"github.com/wonny/renthub/backend/internal/contracts"
	"github.com/wonny/renthub/backend/pkg/logger"
)

// LeaseHandler handles lease-related API endpoints
type LeaseHandler struct {
	leases contracts.LeaseRepository
	logger *logger.Logger
}

// NewLeaseHandler creates a new lease handler
func NewLeaseHandler(leases contracts.LeaseRepository, log *logger.Logger) *LeaseHandler {
	return &LeaseHandler{
		leases: leases,
		logger: log,
	}
}

// List returns leases, optionally filtered by lifecycle state
// GET /api/leases?status=active
func (h *LeaseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		leases []*contracts.Lease
		err    error
	)

	if status := r.URL.Query().Get("status"); status != "" {
		leases, err = h.leases.GetByStatus(ctx, contracts.LeaseStatus(status))
	} else {
		leases, err = h.leases.GetAll(ctx)
	}

	if err != nil {
		h.logger.WithError(err).Error("Failed to list leases")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve leases")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(leases),
		"leases": leases,
	})
}
