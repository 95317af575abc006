package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_admin/internal/config"
	"github.com/shenikar/incident_admin/internal/models"
	"github.com/shenikar/incident_admin/internal/period"
	"github.com/shenikar/incident_admin/internal/report"
	"github.com/shenikar/incident_admin/internal/service"
	"github.com/shenikar/incident_admin/internal/table"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// respondError переводит доменные ошибки в HTTP статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, models.ErrInvalidDate), errors.Is(err, period.ErrUnknownKind):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrNoSelection):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrNotFound):
		status, msg = http.StatusNotFound, "incident not found"
	case errors.Is(err, models.ErrRemoteStoreUnavailable):
		status, msg = http.StatusServiceUnavailable, "remote store unavailable"
	case errors.Is(err, models.ErrTransactionFailed):
		msg = "deletion failed, no incidents were deleted"
	}

	entry := log.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": msg})
}

// bindQuery разбирает и валидирует параметры таблицы
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry) (ListQuery, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return q, false
	}
	if err := h.validate.Struct(q); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, false
	}
	return q, true
}

// bindJSON разбирает и валидирует тело запроса
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get a page of incidents
// @Description Filtered, sorted and paginated incidents of one source. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param source query string true "Source" Enums(mobile, cctv)
// @Param period query string false "Period" Enums(day, week, month, year) default(day)
// @Param date query string false "Anchor date YYYY-MM-DD, defaults to today"
// @Param yearSelection query string false "Year (YYYY) or all"
// @Param allYears query bool false "Legacy all-years flag"
// @Param typeFilter query string false "Incident type"
// @Param statusFilter query string false "Incident status"
// @Param search query string false "Search text"
// @Param showHidden query bool false "Show hidden incidents instead of visible ones"
// @Param sortField query string false "Sort field"
// @Param sortDirection query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Rows per page" default(10)
// @Success 200 {object} PageResponse
// @Failure 400 {object} map[string]string "Invalid query or date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.log(c, "listIncidents")
	q, ok := h.bindQuery(c, log)
	if !ok {
		return
	}

	criteria, err := QueryToCriteria(q, h.cfg.Today())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	page, err := h.incidentService.Page(c.Request.Context(), table.Query{
		Criteria: criteria,
		Sort:     QueryToSort(q),
		Page:     q.Page,
		PerPage:  q.PerPage,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PageToResponse(page))
}

// @Summary Get incident by ID
// @Description Resolve an incident by numeric id or external id from the database or the remote store. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Numeric id or external id"
// @Success 200 {object} models.NormalizedIncident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "getIncident").WithField("id", id)

	incident, err := h.incidentService.ResolveIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Download single incident report
// @Description Render a PDF report for one incident. Requires API key.
// @Tags Reports
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param id path string true "Numeric id or external id"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/report [get]
func (h *Handler) incidentReport(c *gin.Context) {
	id := c.Param("id")
	log := h.log(c, "incidentReport").WithField("id", id)

	doc, err := h.incidentService.GenerateSingleReport(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	sendDocument(c, doc)
}

// @Summary Hide incidents
// @Description Hide the selected incidents. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BulkRequest true "Selected ids"
// @Success 200 {object} BulkResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/hide [post]
func (h *Handler) hideIncidents(c *gin.Context) {
	h.setHidden(c, table.ActionHide)
}

// @Summary Unhide incidents
// @Description Make the selected incidents visible again. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BulkRequest true "Selected ids"
// @Success 200 {object} BulkResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/unhide [post]
func (h *Handler) unhideIncidents(c *gin.Context) {
	h.setHidden(c, table.ActionUnhide)
}

func (h *Handler) setHidden(c *gin.Context, action table.Action) {
	log := h.log(c, string(action)+"Incidents")
	var input BulkRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	var affected int64
	var err error
	if action == table.ActionHide {
		affected, err = h.incidentService.HideIncidents(c.Request.Context(), input.IDs)
	} else {
		affected, err = h.incidentService.UnhideIncidents(c.Request.Context(), input.IDs)
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, BulkResponse{Affected: affected, Message: table.StatusMessage(action)})
}

// @Summary Delete incidents
// @Description Delete the selected incidents from the remote store (best effort) and the database (atomically). Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body BulkRequest true "Selected ids"
// @Success 200 {object} DeletionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Deletion rolled back"
// @Router /incidents/delete [post]
func (h *Handler) deleteIncidents(c *gin.Context) {
	log := h.log(c, "deleteIncidents")
	var input BulkRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	result, err := h.incidentService.DeleteIncidents(c.Request.Context(), input.IDs)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DeletionToResponse(result, table.StatusMessage(table.ActionDelete)))
}

// @Summary Get report summary
// @Description Time series and histograms for the filtered incidents. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param source query string true "Source" Enums(mobile, cctv)
// @Param period query string false "Period" Enums(day, week, month, year) default(day)
// @Param date query string false "Anchor date YYYY-MM-DD, defaults to today"
// @Param yearSelection query string false "Year (YYYY) or all"
// @Param allYears query bool false "Legacy all-years flag"
// @Param typeFilter query string false "Incident type"
// @Param statusFilter query string false "Incident status"
// @Param search query string false "Search text"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query or date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/summary [get]
func (h *Handler) reportSummary(c *gin.Context) {
	log := h.log(c, "reportSummary")
	q, ok := h.bindQuery(c, log)
	if !ok {
		return
	}
	criteria, err := QueryToCriteria(q, h.cfg.Today())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	r, err := h.incidentService.Summarize(c.Request.Context(), criteria, QueryToSort(q))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReportToSummaryResponse(r))
}

// @Summary Download summary report
// @Description Render the summary report for the filtered incidents as PDF. Requires API key.
// @Tags Reports
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param source query string true "Source" Enums(mobile, cctv)
// @Param period query string false "Period" Enums(day, week, month, year) default(day)
// @Param date query string false "Anchor date YYYY-MM-DD, defaults to today"
// @Param yearSelection query string false "Year (YYYY) or all"
// @Param allYears query bool false "Legacy all-years flag"
// @Param sortField query string false "Sort field"
// @Param sortDirection query string false "Sort direction" Enums(asc, desc)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid query or date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/generate [get]
func (h *Handler) generateReport(c *gin.Context) {
	log := h.log(c, "generateReport")
	q, ok := h.bindQuery(c, log)
	if !ok {
		return
	}
	criteria, err := QueryToCriteria(q, h.cfg.Today())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	doc, err := h.incidentService.GenerateReport(c.Request.Context(), criteria, QueryToSort(q))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	sendDocument(c, doc)
}

// @Summary List remote incidents
// @Description Incidents that exist only in the remote store, filtered like the table. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param source query string true "Source" Enums(mobile, cctv)
// @Param period query string false "Period" Enums(day, week, month, year) default(day)
// @Param date query string false "Anchor date YYYY-MM-DD, defaults to today"
// @Param search query string false "Search text"
// @Success 200 {array} models.NormalizedIncident
// @Failure 400 {object} map[string]string "Invalid query or date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Remote store unavailable"
// @Router /remote/incidents [get]
func (h *Handler) listRemoteIncidents(c *gin.Context) {
	log := h.log(c, "listRemoteIncidents")
	q, ok := h.bindQuery(c, log)
	if !ok {
		return
	}
	criteria, err := QueryToCriteria(q, h.cfg.Today())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	incidents, err := h.incidentService.ListRemoteIncidents(c.Request.Context(), criteria)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func sendDocument(c *gin.Context, doc *report.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
