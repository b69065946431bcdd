package stats

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

type Exporter interface {
	Export(ctx context.Context, folder string) (string, error)
	Dir(folder string) string
}

var _ Exporter = (*Service)(nil)

type Handler struct {
	svc Exporter
}

func NewHandler(svc Exporter) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	folder := web.QueryString(r, ParamFolder)
	if folder == nil {
		err := fmt.Errorf("%w: %s", web.ErrMissingParam, ParamFolder)
		web.RespondBadRequest(w, err, fmt.Sprintf(message.MissingParamFmt, ParamFolder), nil)
		return
	}

	if _, err := h.svc.Export(r.Context(), *folder); err != nil {
		if errors.Is(err, ErrOutsideBaseDir) {
			web.RespondBadRequest(w, err, fmt.Sprintf(MsgFmtOutsideBase, *folder), nil)
			return
		}
		if errors.Is(err, ErrCreateDir) {
			web.RespondBadRequest(w, err, fmt.Sprintf(MsgFmtCreateDirErr, h.svc.Dir(*folder)), nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondNoContent(w)
}
