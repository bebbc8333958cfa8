package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"healthcare-optimizer/apperrors"
)

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 response.
func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("error writing response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	se, ok := apperrors.As(err)
	if !ok {
		log.Error("unexpected error", zap.Error(err))
		se = apperrors.NewInternalError(err)
	}
	writeJSON(w, log, apperrors.HTTPStatus(se), se)
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}
	return nil
}
