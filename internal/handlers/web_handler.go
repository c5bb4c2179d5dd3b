package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-hub/internal/web"
)

// WebHandler serves the static landing and demo pages. The engine must
// have web.Templates() installed.
type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", web.IndexPage())
}

func (h *WebHandler) Demo(c *gin.Context) {
	c.HTML(http.StatusOK, "demo.html", web.DemoPage())
}
