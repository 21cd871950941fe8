package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message, Status: status})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageResponse{Message: message})
}

// handleError maps a service error to its HTTP status. Unexpected errors are
// logged and answered with a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, publicMessage(err, "Unauthorized"))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, publicMessage(err, "Access denied"))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, publicMessage(err, "Not found"))
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, publicMessage(err, "Already exists"))
	case errors.Is(err, domain.ErrUpstream):
		log.WarnContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "Upstream service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func publicMessage(err error, fallback string) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Message
	}
	var me *domain.MessageError
	if errors.As(err, &me) {
		return me.Message
	}
	return fallback
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) == 0 {
		return "Invalid request"
	}
	msgs := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// actorFrom returns the principal the auth middleware put in the context.
func actorFrom(r *http.Request) domain.Actor {
	ctx := r.Context()
	email, _ := ctxutil.UserEmailFromCtx(ctx)
	return domain.Actor{
		Email:    email,
		Role:     domain.Role(ctxutil.RoleFromCtx(ctx)),
		AgencyID: ctxutil.AgencyIDFromCtx(ctx),
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "Invalid request body")
	}
	return nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, name+" must be an integer")
	}
	return n, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, domain.NewValidationError(name, name+" must be true or false")
	}
	return b, nil
}

func pageRequest(r *http.Request) (domain.PageRequest, error) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		return domain.PageRequest{}, err
	}
	size, err := queryInt(r, "size", domain.DefaultPageSize)
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.PageRequest{Page: page, Size: size}, nil
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// queryTime parses an ISO timestamp; zone-less values are taken as UTC.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, domain.NewValidationError(name, fmt.Sprintf("%s must be an ISO date-time", name))
}

func requiredTime(r *http.Request, name string) (time.Time, error) {
	t, err := queryTime(r, name)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, domain.NewValidationError(name, name+" is required")
	}
	return *t, nil
}
