package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/hongminglow/field-checkin/internal/auth"
	"github.com/hongminglow/field-checkin/internal/http/respond"
	"github.com/hongminglow/field-checkin/internal/middleware"
	"github.com/hongminglow/field-checkin/internal/models"
	"github.com/hongminglow/field-checkin/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves manager-only team reports.
type ReportHandler struct {
	svc *report.Service
}

// NewReportHandler constructs the handler.
func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Register attaches report routes behind authn and the manager role check.
func (h *ReportHandler) Register(mux *http.ServeMux, authn Middleware) {
	guard := func(fn http.HandlerFunc) http.Handler {
		return authn(middleware.RequireManager(fn))
	}
	mux.Handle("GET /api/reports/daily-summary", guard(h.handleDailySummary))
	mux.Handle("GET /api/reports/daily-summary/export", guard(h.handleExport))
}

func (h *ReportHandler) handleDailySummary(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.dailySummary(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, "", summary)
}

func (h *ReportHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.dailySummary(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, summary); err != nil {
		respond.Internal(w, r, "failed to export report", err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(summary)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write export %s: %v", report.FileName(summary), err)
	}
}

// dailySummary validates query parameters and runs the report, writing the
// error response itself when it returns false.
func (h *ReportHandler) dailySummary(w http.ResponseWriter, r *http.Request) (models.DailySummary, bool) {
	identity, _ := auth.FromContext(r.Context())
	q := r.URL.Query()

	date := q.Get("date")
	if date == "" {
		respond.Error(w, http.StatusBadRequest, "date parameter is required (YYYY-MM-DD)")
		return models.DailySummary{}, false
	}

	var employeeID *int64
	if raw := strings.TrimSpace(q.Get("employee_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respond.Error(w, http.StatusBadRequest, "employee_id must be a positive integer")
			return models.DailySummary{}, false
		}
		employeeID = &id
	}

	summary, err := h.svc.DailySummary(r.Context(), identity.UserID, date, employeeID)
	if err != nil {
		if errors.Is(err, report.ErrInvalidDate) {
			respond.Error(w, http.StatusBadRequest, err.Error())
		} else {
			respond.Internal(w, r, "failed to generate report", err)
		}
		return models.DailySummary{}, false
	}
	return summary, true
}
