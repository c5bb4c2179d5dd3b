package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/agenda-hub/internal/domain/business"
	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/httpresp"
	"github.com/BruksfildServices01/agenda-hub/internal/middleware"
	"github.com/BruksfildServices01/agenda-hub/internal/models"
	"github.com/BruksfildServices01/agenda-hub/internal/usecase/settings"
)

type SettingsHandler struct {
	get    *settings.GetSettings
	update *settings.UpdateSettings
	log    logrus.FieldLogger
}

func NewSettingsHandler(
	get *settings.GetSettings,
	update *settings.UpdateSettings,
	log logrus.FieldLogger,
) *SettingsHandler {
	return &SettingsHandler{get: get, update: update, log: log}
}

// BusinessFormRequest is the settings form body. It is also accepted by
// business creation.
type BusinessFormRequest struct {
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Address       string                `json:"address"`
	Timezone      string                `json:"timezone"`
	BusinessHours models.WeeklySchedule `json:"business_hours"`
}

func (r BusinessFormRequest) form() domain.Form {
	return domain.Form{
		Name:          r.Name,
		Description:   r.Description,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Timezone:      r.Timezone,
		BusinessHours: r.BusinessHours,
	}
}

// settingsFailure is the 500 body of a failed save; the client shows the
// notification as a destructive toast.
type settingsFailure struct {
	httperr.HTTPError
	Notification httpresp.Notification `json:"notification"`
}

// GET /api/me/businesses/:id/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "business_not_found")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), sessionFrom(c), id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_business", "Error al cargar el negocio.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// PUT /api/me/businesses/:id/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id", "business_not_found")
	if !ok {
		return
	}

	var req BusinessFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	out, err := h.update.Execute(c.Request.Context(), sessionFrom(c), id, req.form())
	if err != nil {
		if expected(err) {
			respondError(c, h.log, err, "", "")
			return
		}

		middleware.Logger(c, h.log).
			WithError(err).
			WithField("business_id", id).
			Error("business settings update failed")

		c.JSON(http.StatusInternalServerError, settingsFailure{
			HTTPError: httperr.HTTPError{
				Code:    "failed_to_update_business",
				Message: settings.FailedMessage,
			},
			Notification: httpresp.Failure(settings.FailedMessage),
		})
		return
	}

	c.JSON(http.StatusOK, out)
}
