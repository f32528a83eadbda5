package progress

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	progresserrors "github.com/HorizonColonel/orient-launch-pad/internal/progress/errors"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/apperror"
	"github.com/HorizonColonel/orient-launch-pad/internal/shared/response"
	"github.com/HorizonColonel/orient-launch-pad/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("progress.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("progress.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	h.logger.Warn("progress request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// respond attaches the stale warning to the envelope when rows came from a snapshot.
func respond(c *gin.Context, status int, data interface{}, meta FetchMeta) {
	if meta.Stale {
		response.SuccessWithWarning(c, status, data, meta.Warning)
		return
	}
	response.Success(c, status, data, nil)
}

func (h *Handler) List(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
	filter := FetchFilter{
		ModuleID:   strings.TrimSpace(c.Query("module_id")),
		EmployeeID: strings.TrimSpace(c.Query("employee_id")),
		ActiveOnly: activeOnly,
	}

	res, err := h.service.Fetch(c.Request.Context(), tenant.CallerFromGin(c), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, res, res.FetchMeta)
}

func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context(), tenant.CallerFromGin(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, d, d.FetchMeta)
}

func (h *Handler) ModuleStats(c *gin.Context) {
	stats, err := h.service.ModuleStats(c.Request.Context(), tenant.CallerFromGin(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, stats, stats.FetchMeta)
}

func (h *Handler) EmployeeStats(c *gin.Context) {
	stats, err := h.service.EmployeeStats(c.Request.Context(), tenant.CallerFromGin(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, stats, stats.FetchMeta)
}

func (h *Handler) Export(c *gin.Context) {
	data, err := h.service.ExportReport(c.Request.Context(), tenant.CallerFromGin(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("training-progress-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) UpdateOwn(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateOwn(c.Request.Context(), tenant.CallerFromGin(c), c.Param("module_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, resp, resp.FetchMeta)
}

func (h *Handler) UpdateForEmployee(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateForEmployee(c.Request.Context(), tenant.CallerFromGin(c), c.Param("employee_id"), c.Param("module_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, resp, resp.FetchMeta)
}

func (h *Handler) Reopen(c *gin.Context) {
	var req ReopenRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	resp, err := h.service.Reopen(c.Request.Context(), tenant.CallerFromGin(c), c.Param("employee_id"), c.Param("module_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, resp, resp.FetchMeta)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if req.All && len(req.EmployeeIDs) > 0 {
		h.writeServiceError(c, progresserrors.ErrAssignmentTargetConflict)
		return
	}

	ctx := c.Request.Context()
	caller := tenant.CallerFromGin(c)
	moduleID := c.Param("id")

	var (
		result AssignmentResult
		err    error
	)
	if req.All {
		scope, rerr := tenant.Resolve(caller)
		if rerr != nil {
			h.writeServiceError(c, rerr)
			return
		}
		admin, ok := scope.(tenant.CompanyAdminScope)
		if !ok {
			h.writeServiceError(c, apperror.ErrForbidden)
			return
		}
		// the module is checked against the admin's company inside
		result, err = h.service.AssignModuleToCompany(ctx, admin.CompanyID, moduleID, caller.UserID)
	} else {
		result, err = h.service.AssignModule(ctx, caller, moduleID, req.EmployeeIDs)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := AssignmentResponse{AssignmentResult: result}
	res, err := h.service.Fetch(ctx, caller, FetchFilter{ModuleID: moduleID})
	if err != nil {
		h.logger.Warn("re-fetch after assignment failed", zap.String("module_id", moduleID), zap.Error(err))
		resp.Stale = true
		resp.Warning = apperror.ToHTTP(err).Message
	} else {
		resp.Rows = res.Rows
		resp.FetchMeta = res.FetchMeta
	}
	respond(c, http.StatusOK, resp, resp.FetchMeta)
}
