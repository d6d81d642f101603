package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vietscan/internal/domain"
	"vietscan/internal/service"
)

// DocumentHandler handles the document processing endpoints.
type DocumentHandler struct {
	docService *service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

// ProcessIDCard handles POST /process-id-card/
// @Summary Process an identity card
// @Description Extract structured fields from the front and back images of a Vietnamese citizen identity card
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param front_image formData file true "Front side image (JPG or PNG, max 5MB)"
// @Param back_image formData file true "Back side image (JPG or PNG, max 5MB)"
// @Success 200 {object} domain.ExtractionResult "Merged identity record, or success=false with an error string"
// @Failure 400 {object} ErrorResponse "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /process-id-card/ [post]
func (h *DocumentHandler) ProcessIDCard(c *gin.Context) {
	frontFile, frontHeader, err := c.Request.FormFile("front_image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "front_image field is required")
		return
	}
	defer func() { _ = frontFile.Close() }()

	backFile, backHeader, err := c.Request.FormFile("back_image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "back_image field is required")
		return
	}
	defer func() { _ = backFile.Close() }()

	result, err := h.docService.ProcessIdentityCard(c.Request.Context(),
		service.Upload{File: frontFile, Header: frontHeader},
		service.Upload{File: backFile, Header: backHeader},
	)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProcessMotorbikeRegistration handles POST /process-motobike-registration/
// @Summary Process a motorcycle registration paper
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Document image (JPG or PNG, max 5MB)"
// @Success 200 {object} domain.ExtractionResult
// @Failure 400 {object} ErrorResponse "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /process-motobike-registration/ [post]
func (h *DocumentHandler) ProcessMotorbikeRegistration(c *gin.Context) {
	h.processSingle(c, domain.DocTypeMotorcycleRegistration)
}

// ProcessCarRegistration handles POST /process-car-registration/
// @Summary Process a car registration paper
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Document image (JPG or PNG, max 5MB)"
// @Success 200 {object} domain.ExtractionResult
// @Failure 400 {object} ErrorResponse "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /process-car-registration/ [post]
func (h *DocumentHandler) ProcessCarRegistration(c *gin.Context) {
	h.processSingle(c, domain.DocTypeCarRegistration)
}

// ProcessCarInspection handles POST /process-car-inspection/
// @Summary Process a car inspection certificate
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Document image (JPG or PNG, max 5MB)"
// @Success 200 {object} domain.ExtractionResult
// @Failure 400 {object} ErrorResponse "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /process-car-inspection/ [post]
func (h *DocumentHandler) ProcessCarInspection(c *gin.Context) {
	h.processSingle(c, domain.DocTypeCarInspection)
}

func (h *DocumentHandler) processSingle(c *gin.Context, dt domain.DocumentType) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "image field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.docService.ProcessSingle(c.Request.Context(), dt, service.Upload{File: file, Header: header})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
