package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rakapradana/goaltrack/internal/application"
	"github.com/rakapradana/goaltrack/internal/interface/middleware"
	"github.com/rakapradana/goaltrack/pkg/response"
	"github.com/rakapradana/goaltrack/pkg/validation"
)

type GoalHandler struct {
	Svc    *application.GoalService
	Logger *logrus.Logger
}

func NewGoalHandler(svc *application.GoalService, logger *logrus.Logger) *GoalHandler {
	return &GoalHandler{Svc: svc, Logger: logger}
}

type goalRequest struct {
	Text string `json:"text" binding:"required"`
}

// List GET /api/goals — only the caller's goals, never another user's.
func (h *GoalHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	goals, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("list goals failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, goals, "goals", nil)
}

// Create POST /api/goals
func (h *GoalHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "please add a text field", validation.ToDetails(err))
		return
	}

	g, err := h.Svc.Create(c.Request.Context(), uid, req.Text)
	if err != nil {
		h.Logger.WithError(err).Error("create goal failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, g, "goal created", nil)
}

// Update PUT /api/goals/:id
func (h *GoalHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "please add a text field", validation.ToDetails(err))
		return
	}

	g, err := h.Svc.Update(c.Request.Context(), uid, id, req.Text)
	if err != nil {
		h.writeGoalError(c, err, "update goal failed")
		return
	}
	response.Success(c, http.StatusOK, g, "goal updated", nil)
}

// Delete DELETE /api/goals/:id
func (h *GoalHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), uid, id); err != nil {
		h.writeGoalError(c, err, "delete goal failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id}, "goal deleted", nil)
}

// writeGoalError maps service errors to statuses. Not-found is reported before
// ownership, so a 404 on a foreign id is impossible: a goal that exists but
// belongs to someone else is always a 403.
func (h *GoalHandler) writeGoalError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrGoalNotFound):
		response.Error[any](c, http.StatusNotFound, "goal not found", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error[any](c, http.StatusForbidden, "user not authorized", nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}
