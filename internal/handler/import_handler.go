package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"salesanalytics/internal/importer"
	"salesanalytics/internal/service"
	"salesanalytics/pkg/pagination"
	"salesanalytics/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// room for multipart boundaries and part headers on top of the file itself
const multipartOverhead = 64 << 10

type ImportHandler struct {
	importService service.ImportService
	uploadDir     string
	maxUpload     int64
}

func NewImportHandler(importService service.ImportService, uploadDir string, maxUpload int64) *ImportHandler {
	return &ImportHandler{importService: importService, uploadDir: uploadDir, maxUpload: maxUpload}
}

func (h *ImportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/import", h.Upload)
	router.GET("/api/imports", h.ListImports)
}

// @Summary      Import sales file
// @Description  Uploads a CSV or XLSX file. Every row is validated before any row is stored.
// @Tags         Import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Sales file (.csv or .xlsx)"
// @Success      201  {object}  response.Response{data=service.ImportResult}
// @Failure      400  {object}  response.Response  "Missing, unsupported or malformed file"
// @Failure      413  {object}  response.Response  "File too large"
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/import [post]
func (h *ImportHandler) Upload(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+multipartOverhead)
	}

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			h.rejectTooLarge(c)
			return
		}
		c.JSON(http.StatusBadRequest, response.Fail(http.StatusBadRequest, response.CodeValidation, "file: multipart field is required", nil))
		return
	}
	if h.maxUpload > 0 && file.Size > h.maxUpload {
		h.rejectTooLarge(c)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, err := importer.FormatFromName(file.Filename); err != nil {
		writeError(c, err, nil)
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		writeError(c, fmt.Errorf("failed to prepare upload dir: %w", err), nil)
		return
	}
	dst := filepath.Join(h.uploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		writeError(c, fmt.Errorf("failed to store upload: %w", err), nil)
		return
	}

	result, err := h.importService.ImportFile(c.Request.Context(), dst, file.Filename)
	if err != nil {
		// rejected files are not kept
		_ = os.Remove(dst)
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

func (h *ImportHandler) rejectTooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, response.Fail(http.StatusRequestEntityTooLarge, response.CodeFileTooLarge,
		fmt.Sprintf("file: exceeds %d bytes", h.maxUpload), nil))
}

// @Summary      List imports
// @Description  Import history, newest first
// @Tags         Import
// @Produce      json
// @Param        page   query  int  false  "Page number (default 1)"
// @Param        limit  query  int  false  "Items per page (default 20)"
// @Success      200  {object}  response.Response{data=object}
// @Failure      503  {object}  response.Response  "Storage unavailable"
// @Router       /api/imports [get]
func (h *ImportHandler) ListImports(c *gin.Context) {
	page := pagination.Parse(c)

	logs, total, err := h.importService.ListImports(c.Request.Context(), page)
	if err != nil {
		writeError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"imports":    logs,
		"pagination": page.Describe(total),
	}))
}
