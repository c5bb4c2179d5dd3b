package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/httperr"
	"github.com/BruksfildServices01/agenda-hub/internal/middleware"
	"github.com/BruksfildServices01/agenda-hub/internal/session"
)

type apiError struct {
	status  int
	message string
}

// businessErrors maps domain error codes to their HTTP rendering.
// Codes not listed here are treated as unexpected failures.
var businessErrors = map[string]apiError{
	"business_not_found": {http.StatusNotFound, "Negocio no encontrado."},
	"booking_not_found":  {http.StatusNotFound, "Reserva no encontrada."},
	"service_not_found":  {http.StatusNotFound, "Servicio no encontrado."},
	"profile_not_found":  {http.StatusNotFound, "Perfil no encontrado."},

	"invalid_credentials": {http.StatusUnauthorized, "Email o contraseña incorrectos."},
	"forbidden":           {http.StatusForbidden, "Acceso restringido a administradores."},

	"email_already_exists": {http.StatusConflict, "Ya existe una cuenta con ese email."},

	"invalid_state":         {http.StatusBadRequest, "La reserva no admite ese cambio de estado."},
	"invalid_action":        {http.StatusBadRequest, "Acción no válida."},
	"missing_customer_data": {http.StatusBadRequest, "Nombre, email y teléfono son obligatorios."},
	"invalid_email":         {http.StatusBadRequest, "Email inválido."},
	"weak_password":         {http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres."},
	"invalid_date_or_time":  {http.StatusBadRequest, "Fecha u hora inválida."},
	"ends_after_midnight":   {http.StatusBadRequest, "El servicio terminaría después de medianoche."},
	"invalid_image":         {http.StatusBadRequest, "La imagen no es válida."},
	"image_too_large":       {http.StatusBadRequest, "La imagen supera el tamaño máximo."},

	"storage_disabled": {http.StatusServiceUnavailable, "La subida de imágenes no está disponible."},
}

// respondError renders err. Validation failures become 422 with field
// messages, known business codes use their mapped status, anything else
// is logged and answered with fallbackCode as a 500.
func respondError(
	c *gin.Context,
	log logrus.FieldLogger,
	err error,
	fallbackCode string,
	fallbackMessage string,
) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Unprocessable(c, ve.Fields)
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		if mapped, known := businessErrors[code]; known {
			httperr.Write(c, mapped.status, code, mapped.message)
			return
		}
	}

	entry := middleware.Logger(c, log).WithError(err)

	if errors.Is(err, context.DeadlineExceeded) {
		entry.Warn("request timed out")
		httperr.Write(c, http.StatusGatewayTimeout, "timeout", "La operación tardó demasiado.")
		return
	}

	entry.WithField("error_code", fallbackCode).Error("request failed")
	httperr.Internal(c, fallbackCode, fallbackMessage)
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Datos inválidos en la solicitud.")
}

// sessionFrom reads the session stored by the auth middleware. Routes
// using it are always mounted behind AuthMiddleware.
func sessionFrom(c *gin.Context) session.Session {
	return c.MustGet(middleware.ContextSession).(session.Session)
}

// paramID parses a uuid path parameter. A malformed id is answered like
// a missing row.
func paramID(c *gin.Context, name, notFoundCode string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		mapped := businessErrors[notFoundCode]
		httperr.NotFound(c, notFoundCode, mapped.message)
		return uuid.Nil, false
	}
	return id, true
}

// expected reports whether respondError renders err without treating it
// as a failure.
func expected(err error) bool {
	if _, ok := httperr.AsValidation(err); ok {
		return true
	}
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}
	_, known := businessErrors[code]
	return known
}
