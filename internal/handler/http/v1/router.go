package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestIDMiddleware())

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Таблица, детали и массовые действия
	incidents := protected.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/report", h.incidentReport)
		incidents.POST("/hide", h.hideIncidents)
		incidents.POST("/unhide", h.unhideIncidents)
		incidents.POST("/delete", h.deleteIncidents)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/summary", h.reportSummary)
		reports.GET("/generate", h.generateReport)
	}

	protected.GET("/remote/incidents", h.listRemoteIncidents)

	// Состояние таблицы сессии (X-Session-ID)
	tables := protected.Group("/tables/:source")
	{
		tables.GET("", h.getTable)
		tables.PUT("", h.updateTableCriteria)
		tables.POST("/sort", h.sortTable)
		tables.POST("/page", h.pageTable)
		tables.POST("/toggle-hidden", h.toggleHidden)
		tables.POST("/select-all", h.selectAll)
		tables.POST("/selection", h.setSelection)
		tables.POST("/actions/:action", h.runTableAction)
	}
}
