package tourism

import (
	"net/http"

	"desaadmin/internal/domain"
	"desaadmin/internal/middleware"
	"desaadmin/internal/modules/records"
	"desaadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *records.Service[domain.TourismSite]
}

func NewHandler(service *records.Service[domain.TourismSite]) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/tourism-sites")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", middleware.RequireConfirmation(), h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load tourism sites", err.Error())
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req SiteRequest
	if err := c.ShouldBind(&req); err != nil {
		records.WriteValidationError(c, "Name is required", err)
		return
	}

	item := req.Model()
	err := h.service.Create(c.Request.Context(), item, records.ImageFile(c), func(url string) {
		item.ImageURL = url
	})
	if err != nil {
		records.WriteMutationError(c, err, "CREATE_FAILED", "CONFLICT", "Duplicate record")
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := records.IDParam(c)
	if !ok {
		return
	}

	var req SiteRequest
	if err := c.ShouldBind(&req); err != nil {
		records.WriteValidationError(c, "Name is required", err)
		return
	}

	err := h.service.Update(c.Request.Context(), id, req.UpdateFields(), records.ImageFile(c), "image_url")
	if err != nil {
		records.WriteMutationError(c, err, "UPDATE_FAILED", "CONFLICT", "Duplicate record")
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
