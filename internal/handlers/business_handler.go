package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/imaging"
	"github.com/BruksfildServices01/agenda-hub/internal/usecase/business"
)

type BusinessHandler struct {
	create        *business.CreateBusiness
	listServices  *business.ListServices
	createService *business.CreateService
	updateService *business.UpdateService
	uploadLogo    *business.UploadLogo
	log           logrus.FieldLogger
}

func NewBusinessHandler(
	create *business.CreateBusiness,
	listServices *business.ListServices,
	createService *business.CreateService,
	updateService *business.UpdateService,
	uploadLogo *business.UploadLogo,
	log logrus.FieldLogger,
) *BusinessHandler {
	return &BusinessHandler{
		create:        create,
		listServices:  listServices,
		createService: createService,
		updateService: updateService,
		uploadLogo:    uploadLogo,
		log:           log,
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

func (r ServiceRequest) patch() business.ServicePatch {
	return business.ServicePatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		IsActive:    r.IsActive,
	}
}

// --------- Business ---------

func (h *BusinessHandler) Create(c *gin.Context) {
	var req BusinessFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), sessionFrom(c), req.form())
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_business", "No se pudo crear el negocio.")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// UploadLogo takes the multipart field "logo".
func (h *BusinessHandler) UploadLogo(c *gin.Context) {
	id, ok := paramID(c, "id", "business_not_found")
	if !ok {
		return
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		invalidRequest(c)
		return
	}
	if fh.Size > imaging.MaxLogoBytes {
		respondError(c, h.log, httperr.ErrBusiness("image_too_large"), "", "")
		return
	}

	f, err := fh.Open()
	if err != nil {
		invalidRequest(c)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, imaging.MaxLogoBytes+1))
	if err != nil {
		invalidRequest(c)
		return
	}

	url, err := h.uploadLogo.Execute(c.Request.Context(), sessionFrom(c), id, raw)
	if err != nil {
		respondError(c, h.log, err, "failed_to_upload_logo", "No se pudo guardar el logo.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}

// --------- Services ---------

func (h *BusinessHandler) ListServices(c *gin.Context) {
	id, ok := paramID(c, "id", "business_not_found")
	if !ok {
		return
	}

	rows, err := h.listServices.Execute(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_services", "Error al cargar los servicios.")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *BusinessHandler) CreateService(c *gin.Context) {
	id, ok := paramID(c, "id", "business_not_found")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	out, err := h.createService.Execute(c.Request.Context(), sessionFrom(c), id, req.patch())
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_service", "No se pudo crear el servicio.")
		return
	}

	c.JSON(http.StatusCreated, out)
}

func (h *BusinessHandler) UpdateService(c *gin.Context) {
	id, ok := paramID(c, "id", "service_not_found")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	out, err := h.updateService.Execute(c.Request.Context(), sessionFrom(c), id, req.patch())
	if err != nil {
		respondError(c, h.log, err, "failed_to_update_service", "No se pudo actualizar el servicio.")
		return
	}

	c.JSON(http.StatusOK, out)
}
