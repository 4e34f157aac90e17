package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskvault/internal/common"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *RESTServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *RESTServer) writeJSONError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorResponse{Detail: detail})
}

// writeError maps the service error taxonomy onto response classes. Internal
// details never reach the body beyond the error kind.
func (s *RESTServer) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorEmailExists):
		s.writeJSONError(w, http.StatusConflict, common.ErrorEmailExists.Error())
	case errors.Is(err, common.ErrorInvalidCredentials):
		s.writeJSONError(w, http.StatusUnauthorized, common.ErrorInvalidCredentials.Error())
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSONError(w, http.StatusNotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorValidation):
		s.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error(ctx, err.Error())
		s.writeJSONError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}
