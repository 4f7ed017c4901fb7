package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/janus-care/janus/internal/service"
	"github.com/janus-care/janus/pkg/httpx"
	"github.com/janus-care/janus/pkg/slogx"
)

// writeServiceError maps service sentinels onto HTTP statuses with the
// uniform {"msg": ...} body. Unknown errors become an opaque 500; the
// detail goes to the log only.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	// Bad credentials and bad reset tokens are 400 like every other
	// caller-fixable input error; 401 is reserved for requests that lack a
	// valid access token.
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateInvitation),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidResetToken):
		httpx.WriteMsg(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrNoValidInvitation),
		errors.Is(err, service.ErrForbidden):
		httpx.WriteMsg(w, http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNoSuchUser):
		httpx.WriteMsg(w, http.StatusNotFound, err.Error())

	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		httpx.WriteMsg(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteMsg(w, http.StatusBadRequest, "invalid JSON body")
}
