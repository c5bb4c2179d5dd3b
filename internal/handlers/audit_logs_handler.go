package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/audit"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
	log    logrus.FieldLogger
}

func NewAuditLogsHandler(reader audit.Reader, log logrus.FieldLogger) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, log: log}
}

// List pages through the owner's audit trail, newest first.
// Optional filters: action, entity, from, to (YYYY-MM-DD, inclusive).
func (h *AuditLogsHandler) List(c *gin.Context) {
	sess := sessionFrom(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	// --------------------------------------------------
	// Date range
	// --------------------------------------------------

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}

	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.reader.ListForOwner(c.Request.Context(), sess.UserID, f)
	if err != nil {
		respondError(c, h.log, err, "audit_list_failed", "Error al listar el historial.")
		return
	}

	c.JSON(200, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
