package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/cost-compass/pkg/adapters"
	"github.com/de-tools/cost-compass/pkg/models/api"
	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/pipeline"
	"github.com/rs/zerolog"
)

type Handler struct {
	orchestrator *pipeline.Orchestrator
}

func NewHandler(orchestrator *pipeline.Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}

// GetDashboard returns the current pipeline state without triggering work.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.writeState(w, r)
}

// RefreshDashboard runs a full pipeline cycle and returns the resulting state.
func (h *Handler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	h.orchestrator.Refresh(r.Context())
	h.writeState(w, r)
}

// ConnectAWS stores the submitted credential and refreshes with live data.
// An incomplete credential is rejected without touching pipeline state.
func (h *Handler) ConnectAWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var creds api.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.Warn().Err(err).Msg("failed to decode credentials payload")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.orchestrator.Connect(ctx, adapters.MapCredentialsApiToDomain(creds)); err != nil {
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) {
			writeError(w, http.StatusBadRequest, cfgErr.Error())
			return
		}
		logger.Error().Err(err).Msg("failed to store credentials")
		writeError(w, http.StatusInternalServerError, "failed to store credentials")
		return
	}

	h.writeState(w, r)
}

// DisconnectAWS drops the credential and returns the demo-data state.
func (h *Handler) DisconnectAWS(w http.ResponseWriter, r *http.Request) {
	h.orchestrator.Disconnect(r.Context())
	h.writeState(w, r)
}

func (h *Handler) writeState(w http.ResponseWriter, r *http.Request) {
	state := h.orchestrator.Store().State()

	response := api.DashboardState{
		Status:       string(state.Status),
		AWSConnected: state.AWSConnected,
		Error:        state.ErrorMessage,
	}
	if state.Snapshot != nil {
		snapshot := adapters.MapSnapshotDomainToApi(*state.Snapshot)
		response.Snapshot = &snapshot
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode dashboard state")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
