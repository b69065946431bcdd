package health

import (
	"context"
	"net/http"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

const (
	MsgOK          = "ok"
	MsgUnavailable = "Database unavailable."

	pingTimeout = 2 * time.Second
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		web.RespondServiceUnavailable(w, err, MsgUnavailable, nil)
		return
	}

	msg := MsgOK
	web.RespondOK[any](w, &msg, nil)
}
