package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/usecase/dashboard"
)

type DashboardHandler struct {
	get *dashboard.GetDashboard
	log logrus.FieldLogger
}

func NewDashboardHandler(get *dashboard.GetDashboard, log logrus.FieldLogger) *DashboardHandler {
	return &DashboardHandler{get: get, log: log}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_load_dashboard", "Error al cargar el panel.")
		return
	}

	c.JSON(http.StatusOK, out)
}
