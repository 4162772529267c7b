package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.trai.ch/orchay/internal/core/domain"
)

const cacheControlNoStore = "no-store, must-revalidate"

// maxBodyBytes bounds request bodies, including wbs.yaml uploads.
const maxBodyBytes = 8 << 20

type apiError struct {
	Status  int
	Message string
}

type apiHandler func(http.ResponseWriter, *http.Request) *apiError

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func badRequest(msg string) *apiError {
	return &apiError{Status: http.StatusBadRequest, Message: msg}
}

// errorFor maps a domain error to an HTTP status.
func errorFor(err error) *apiError {
	status := http.StatusInternalServerError
	switch {
	case domain.HasKind(err, domain.ErrInvalidProjectID),
		domain.HasKind(err, domain.ErrInvalidSettingsType):
		status = http.StatusBadRequest
	case domain.HasKind(err, domain.ErrProjectNotFound),
		domain.HasKind(err, domain.ErrSettingsNotFound):
		status = http.StatusNotFound
	case domain.HasKind(err, domain.ErrRevisionMismatch):
		status = http.StatusPreconditionFailed
	case domain.HasKind(err, domain.ErrBasePathNotFound),
		domain.HasKind(err, domain.ErrBasePathNotDir):
		status = http.StatusUnprocessableEntity
	case domain.HasKind(err, domain.ErrWBSParseFailed),
		domain.HasKind(err, domain.ErrSettingsParseFailed):
		status = http.StatusUnprocessableEntity
	}
	return &apiError{Status: status, Message: err.Error()}
}

func decodeJSON(r *http.Request, v any) *apiError {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return badRequest("invalid request body: " + err.Error())
	}
	return nil
}
