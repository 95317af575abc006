package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_admin/internal/table"
	"github.com/sirupsen/logrus"
)

type viewMutation func(ctx context.Context, view *table.View) (*table.Page, error)

// withView загружает состояние таблицы сессии, применяет изменение, перерисовывает и сохраняет
func (h *Handler) withView(c *gin.Context, log *logrus.Entry, mutate viewMutation) {
	source := c.Param("source")
	if err := h.validate.Var(source, "required,oneof=mobile cctv"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown source"})
		return
	}
	session := c.GetHeader(sessionHeader)
	if err := h.validate.Var(session, "required,max=128"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": sessionHeader + " header required"})
		return
	}
	log = log.WithFields(logrus.Fields{"source": source, "session": session})
	ctx := c.Request.Context()

	view, err := h.incidentService.LoadView(ctx, session, source, h.cfg.Today())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	page, err := mutate(ctx, view)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if page == nil {
		if page, err = view.Render(ctx, h.incidentService); err != nil {
			h.respondError(c, log, err)
			return
		}
	}

	if err := h.incidentService.SaveView(ctx, session, view); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewResponse{View: view, Page: PageToResponse(page)})
}

// @Summary Get table state
// @Description Current state and page of the session table. Requires API key.
// @Tags Tables
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid source or session"
// @Router /tables/{source} [get]
func (h *Handler) getTable(c *gin.Context) {
	h.withView(c, h.log(c, "getTable"), func(context.Context, *table.View) (*table.Page, error) {
		return nil, nil
	})
}

// @Summary Update table filters
// @Description Apply new filters; the table returns to the first page. Requires API key.
// @Tags Tables
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param X-Session-ID header string true "Session id"
// @Param request body TableCriteriaRequest true "Filters"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /tables/{source} [put]
func (h *Handler) updateTableCriteria(c *gin.Context) {
	log := h.log(c, "updateTableCriteria")
	var input TableCriteriaRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.withView(c, log, func(ctx context.Context, view *table.View) (*table.Page, error) {
		return view.OnCriteriaChanged(ctx, h.incidentService, RequestToTableCriteria(input))
	})
}

// @Summary Sort table
// @Description Sort by a field; repeating the same field toggles the direction. Requires API key.
// @Tags Tables
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param X-Session-ID header string true "Session id"
// @Param request body SortRequest true "Sort field"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /tables/{source}/sort [post]
func (h *Handler) sortTable(c *gin.Context) {
	log := h.log(c, "sortTable")
	var input SortRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.withView(c, log, func(_ context.Context, view *table.View) (*table.Page, error) {
		view.SortBy(input.Field)
		return nil, nil
	})
}

// @Summary Change table page
// @Description Go to a page and optionally change the page size. Requires API key.
// @Tags Tables
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param X-Session-ID header string true "Session id"
// @Param request body PageRequest true "Page"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /tables/{source}/page [post]
func (h *Handler) pageTable(c *gin.Context) {
	log := h.log(c, "pageTable")
	var input PageRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.withView(c, log, func(_ context.Context, view *table.View) (*table.Page, error) {
		if input.PerPage > 0 && input.PerPage != view.PerPage {
			view.SetPerPage(input.PerPage)
			return nil, nil
		}
		if input.Page > 0 {
			view.SetPage(input.Page)
		}
		return nil, nil
	})
}

// @Summary Toggle hidden incidents
// @Description Switch between visible and hidden incidents; clears the selection. Requires API key.
// @Tags Tables
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} ViewResponse
// @Router /tables/{source}/toggle-hidden [post]
func (h *Handler) toggleHidden(c *gin.Context) {
	h.withView(c, h.log(c, "toggleHidden"), func(_ context.Context, view *table.View) (*table.Page, error) {
		view.ToggleShowHidden()
		return nil, nil
	})
}

// @Summary Select all rows
// @Description Select or clear the rows of the currently displayed page. Requires API key.
// @Tags Tables
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param X-Session-ID header string true "Session id"
// @Param request body SelectAllRequest true "Flag"
// @Success 200 {object} ViewResponse
// @Router /tables/{source}/select-all [post]
func (h *Handler) selectAll(c *gin.Context) {
	log := h.log(c, "selectAll")
	var input SelectAllRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.withView(c, log, func(_ context.Context, view *table.View) (*table.Page, error) {
		view.SetSelectAll(input.On)
		return nil, nil
	})
}

// @Summary Set selection
// @Description Replace the selection with the given ids; clears the select-all flag. Requires API key.
// @Tags Tables
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param X-Session-ID header string true "Session id"
// @Param request body SelectionRequest true "Selected ids"
// @Success 200 {object} ViewResponse
// @Router /tables/{source}/selection [post]
func (h *Handler) setSelection(c *gin.Context) {
	log := h.log(c, "setSelection")
	var input SelectionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.withView(c, log, func(_ context.Context, view *table.View) (*table.Page, error) {
		if len(input.IDs) == 0 {
			view.ClearSelection()
			return nil, nil
		}
		view.SetSelected(input.IDs)
		return nil, nil
	})
}

// @Summary Run bulk action
// @Description Hide, unhide or delete the selected rows, then clear the selection. Requires API key.
// @Tags Tables
// @Produce json
// @Security ApiKeyAuth
// @Param source path string true "Source" Enums(mobile, cctv)
// @Param action path string true "Action" Enums(hide, unhide, delete)
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "No selection or unknown action"
// @Failure 500 {object} map[string]string "Deletion rolled back"
// @Router /tables/{source}/actions/{action} [post]
func (h *Handler) runTableAction(c *gin.Context) {
	action := table.Action(c.Param("action"))
	log := h.log(c, "runTableAction").WithField("action", action)
	if table.StatusMessage(action) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	h.withView(c, log, func(ctx context.Context, view *table.View) (*table.Page, error) {
		return nil, view.RunBulk(ctx, h.incidentService, action)
	})
}
