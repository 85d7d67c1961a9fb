package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/riteshkumar/networth-tracker/internal/report"
	"github.com/riteshkumar/networth-tracker/internal/service"
	u "github.com/riteshkumar/networth-tracker/internal/utils"
)

// SummaryHandler serves read-only derivations over accounts and snapshots.
type SummaryHandler struct {
	netWorthService service.NetWorthService
	logger          *slog.Logger
}

func NewSummaryHandler(netWorthService service.NetWorthService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		netWorthService: netWorthService,
		logger:          logger,
	}
}

func (h *SummaryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/summary", h.GetSummary).Methods(http.MethodGet)
	router.HandleFunc("/history", h.GetHistory).Methods(http.MethodGet)
	router.HandleFunc("/breakdown", h.GetBreakdown).Methods(http.MethodGet)
	router.HandleFunc("/categories", h.GetCategories).Methods(http.MethodGet)
}

func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	u.WriteJSON(w, http.StatusOK, report.Summary(h.netWorthService))
}

// GetHistory charts the most recent ?limit= snapshots, report.ChartWindow by default.
func (h *SummaryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := u.QueryInt(r, "limit", report.ChartWindow)
	if err != nil {
		h.logger.Warn("invalid history request", "error", err.Error())
		u.WriteError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	u.WriteJSON(w, http.StatusOK, report.History(h.netWorthService.Snapshots(), limit))
}

func (h *SummaryHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	u.WriteJSON(w, http.StatusOK, report.Breakdown(h.netWorthService.Accounts()))
}

func (h *SummaryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	u.WriteJSON(w, http.StatusOK, report.Categories())
}
