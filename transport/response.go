package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/contacts-api/constant"
	"github.com/muhammadheryan/contacts-api/utils/errors"
	"github.com/muhammadheryan/contacts-api/utils/logger"
	"go.uber.org/zap"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusCreated, body)
}

// writeError maps a CustomError to its status and body. Anything else
// degrades to a generic 500 so internal details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("unclassified handler error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
