package residents

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"desaadmin/internal/domain"
	"desaadmin/internal/middleware"
	"desaadmin/internal/modules/records"
	"desaadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *records.Service[domain.Resident]
}

func NewHandler(service *records.Service[domain.Resident]) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/residents")
	{
		group.GET("", h.List)
		group.GET("/export", h.Export)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", middleware.RequireConfirmation(), h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load residents", err.Error())
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req ResidentRequest
	if err := c.ShouldBind(&req); err != nil {
		records.WriteValidationError(c, "NIK and nama_lengkap are required", err)
		return
	}

	item := req.Model()
	if err := h.service.Create(c.Request.Context(), item, nil, nil); err != nil {
		records.WriteMutationError(c, err, "CREATE_FAILED", "NIK_EXISTS", "This NIK is already registered")
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := records.IDParam(c)
	if !ok {
		return
	}

	var req ResidentRequest
	if err := c.ShouldBind(&req); err != nil {
		records.WriteValidationError(c, "NIK and nama_lengkap are required", err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.UpdateFields(), nil, ""); err != nil {
		records.WriteMutationError(c, err, "UPDATE_FAILED", "NIK_EXISTS", "This NIK is already registered")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to reload record", err.Error())
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := records.IDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		records.WriteMutationError(c, err, "DELETE_FAILED", "", "")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// Export streams the current resident list as a dated XLSX download.
func (h *Handler) Export(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to load residents", err.Error())
		return
	}

	f, err := BuildWorkbook(items)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			response.Error(c, http.StatusConflict, "EMPTY_LIST", "There are no residents to export")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to build spreadsheet", err.Error())
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename(time.Now())))
	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing left to do but log via gin.
		_ = c.Error(err)
	}
}
