package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/renthub/backend/internal/contracts"
	"github.com/wonny/renthub/backend/pkg/logger"
)

// ActivityHandler handles activity-related API endpoints
// ⭐ SSOT: 활동 API 핸들러는 이 구조체에서만
type ActivityHandler struct {
	engine     contracts.ActivityEngine
	activities contracts.ActivityRepository
	logger     *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(engine contracts.ActivityEngine, activities contracts.ActivityRepository, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		engine:     engine,
		activities: activities,
		logger:     log,
	}
}

// List returns activities filtered by workflow state (default: pending)
// GET /api/activities?status=pending
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := contracts.ActivityStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = contracts.ActivityStatusPending
	}
	if !contracts.ValidActivityStatus(status) {
		respondError(w, http.StatusBadRequest, "Unknown activity status")
		return
	}

	activities, err := h.activities.GetByStatus(ctx, status)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list activities")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve activities")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":      len(activities),
		"activities": activities,
	})
}

// ListByLease returns all activities generated from one lease
// GET /api/leases/{id}/activities
func (h *ActivityHandler) ListByLease(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	leaseID := mux.Vars(r)["id"]

	activities, err := h.activities.GetByRelatedID(ctx, leaseID)
	if err != nil {
		h.logger.WithError(err).WithField("lease", leaseID).Error("Failed to list activities for lease")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve activities")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":      len(activities),
		"activities": activities,
	})
}

// GenerateRequest represents a manual generation trigger
type GenerateRequest struct {
	Date string `json:"date"` // Optional: reference date (YYYY-MM-DD), defaults to today
}

// Generate triggers one engine run
// POST /api/activities/generate
func (h *ActivityHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	today := time.Now()

	if r.Body != nil && r.ContentLength > 0 {
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Date != "" {
			parsed, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
				return
			}
			today = parsed
		}
	}

	activities, err := h.engine.Generate(ctx, today)
	if err != nil {
		h.logger.WithError(err).Error("Activity generation failed")
		respondError(w, http.StatusInternalServerError, "Activity generation failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"generated":  len(activities),
		"date":       today.Format("2006-01-02"),
		"activities": activities,
	})
}

// UpdateStatusRequest represents a workflow state change
type UpdateStatusRequest struct {
	Status contracts.ActivityStatus `json:"status"`
}

// UpdateStatus moves one activity to a new workflow state
// PATCH /api/activities/{id}/status
func (h *ActivityHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !contracts.ValidActivityStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "Unknown activity status")
		return
	}

	if err := h.activities.UpdateStatus(ctx, id, req.Status); err != nil {
		h.logger.WithError(err).WithField("activity", id).Error("Failed to update activity status")
		respondError(w, http.StatusNotFound, "Activity not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": string(req.Status),
	})
}
