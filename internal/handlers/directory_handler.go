package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/usecase/directory"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// DirectoryHandler serves the public business directory. No session.
type DirectoryHandler struct {
	list *directory.ListDirectory
	get  *directory.GetBusiness
	log  logrus.FieldLogger
}

func NewDirectoryHandler(
	list *directory.ListDirectory,
	get *directory.GetBusiness,
	log logrus.FieldLogger,
) *DirectoryHandler {
	return &DirectoryHandler{list: list, get: get, log: log}
}

func (h *DirectoryHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_businesses", "Error al cargar los negocios.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *DirectoryHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id", "business_not_found")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_business", "Error al cargar el negocio.")
		return
	}

	c.JSON(http.StatusOK, out)
}
