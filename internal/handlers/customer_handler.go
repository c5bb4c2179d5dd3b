package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/usecase/customer"
)

type CustomerHandler struct {
	list *customer.ListCustomers
	log  logrus.FieldLogger
}

func NewCustomerHandler(list *customer.ListCustomers, log logrus.FieldLogger) *CustomerHandler {
	return &CustomerHandler{list: list, log: log}
}

// ======================================================
// LIST CUSTOMERS (OWNER)
// ======================================================

// List returns customers who booked at one of the owner's businesses,
// filtered by ?q= on name, email or phone.
func (h *CustomerHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), sessionFrom(c), c.Query("q"))
	if err != nil {
		respondError(c, h.log, err, "failed_to_list_customers", "Error al cargar los clientes.")
		return
	}

	c.JSON(http.StatusOK, out)
}
