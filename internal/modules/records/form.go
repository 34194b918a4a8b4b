package records

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"desaadmin/internal/pkg/response"
	"desaadmin/internal/pkg/validator"
	"desaadmin/internal/repository"

	"github.com/gin-gonic/gin"
)

// WriteValidationError answers a failed form bind. When the failure came from
// field validation the response carries a field→rule map the client can put
// next to the inputs.
func WriteValidationError(c *gin.Context, message string, err error) {
	if details := validator.Details(err); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", message, details)
		return
	}
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

// ImageFile returns the optional "image" file part of a multipart submit,
// or nil when the form carries none.
func ImageFile(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

// IDParam parses the :id route parameter.
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid record ID")
		return 0, false
	}
	return id, true
}

// WriteMutationError maps pipeline failures onto the API error envelope.
// duplicateCode/duplicateMessage describe the entity's natural key so the
// client can show the specific "already registered" message.
func WriteMutationError(c *gin.Context, err error, failCode, duplicateCode, duplicateMessage string) {
	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		response.Error(c, http.StatusConflict, duplicateCode, duplicateMessage)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrUpload), errors.Is(err, ErrUploadsDisabled):
		response.ErrorWithDetails(c, http.StatusBadGateway, "UPLOAD_FAILED", "Image upload failed, nothing was saved", err.Error())
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, failCode, "Operation failed", err.Error())
	}
}
