// Package httpapi holds the JSON response helpers shared by all handlers,
// including the mapping from the apperr taxonomy to status codes.
package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"inventaris/internal/apperr"
	"inventaris/pkg/logger"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the response for a failed operation. Validation errors are
// per-field 422s, business-rule refusals 409s, missing entities 404s;
// anything else is an infrastructure failure reported generically.
func Error(w http.ResponseWriter, log logger.ZapLogger, err error) {
	if v, ok := apperr.AsValidation(err); ok {
		JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": v.Fields})
		return
	}
	if r, ok := apperr.AsRule(err); ok {
		JSON(w, http.StatusConflict, map[string]string{"message": r.Message})
		return
	}
	if n, ok := apperr.AsNotFound(err); ok {
		JSON(w, http.StatusNotFound, map[string]string{"message": n.Error()})
		return
	}
	log.Error("request failed", zap.Error(err))
	JSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"message": message})
}
