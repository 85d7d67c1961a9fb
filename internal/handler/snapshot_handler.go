package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/riteshkumar/networth-tracker/internal/service"
	u "github.com/riteshkumar/networth-tracker/internal/utils"
)

type SnapshotHandler struct {
	netWorthService service.NetWorthService
	logger          *slog.Logger
}

func NewSnapshotHandler(netWorthService service.NetWorthService, logger *slog.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		netWorthService: netWorthService,
		logger:          logger,
	}
}

func (h *SnapshotHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/snapshots", h.ListSnapshots).Methods(http.MethodGet)
	router.HandleFunc("/snapshots", h.TakeSnapshot).Methods(http.MethodPost)
	router.HandleFunc("/snapshots/{id}", h.GetSnapshot).Methods(http.MethodGet)
	router.HandleFunc("/snapshots/{id}", h.DeleteSnapshot).Methods(http.MethodDelete)
}

// ListSnapshots returns snapshots newest first.
func (h *SnapshotHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	u.WriteJSON(w, http.StatusOK, h.netWorthService.Snapshots())
}

func (h *SnapshotHandler) TakeSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := h.netWorthService.TakeSnapshot()
	u.WriteJSON(w, http.StatusCreated, snapshot)
}

func (h *SnapshotHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.netWorthService.Snapshot(mux.Vars(r)["id"])
	if !ok {
		u.WriteError(w, http.StatusNotFound, "snapshot not found", "")
		return
	}
	u.WriteJSON(w, http.StatusOK, snapshot)
}

func (h *SnapshotHandler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	h.netWorthService.DeleteSnapshot(mux.Vars(r)["id"])
	u.WriteNoContent(w)
}
