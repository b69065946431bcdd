package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

const maskChar = "*"

type UserService interface {
	Create(ctx context.Context, creds Credentials, roleType string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID int64) (*User, error)
	Update(ctx context.Context, userID int64, creds Credentials) (*User, error)
	Delete(ctx context.Context, userID int64) error
}

var _ UserService = (*Service)(nil)

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

type UpsertRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

func (r UpsertRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type Response struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	CreateAt time.Time `json:"createAt"`
}

func NewResponse(u *User) *Response {
	return &Response{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		CreateAt: u.CreatedAt,
	}
}

type ListResponse struct {
	Users []Response `json:"users"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpsertRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	const roleParam = "roleType"
	rawRole := r.URL.Query().Get(roleParam)
	if rawRole == "" {
		web.RespondBadRequest(w, web.ErrMissingParam, fmt.Sprintf(message.MissingParamFmt, roleParam), nil)
		return
	}

	u, err := h.svc.Create(r.Context(), Credentials(req), rawRole)
	if err != nil {
		if errors.Is(err, ErrInvalidRole) {
			web.RespondBadRequest(w, err, fmt.Sprintf(MsgFmtInvalidRole, rawRole), nil)
			return
		}
		h.fail(w, err, req)
		return
	}

	msg := MsgCreated
	web.RespondCreated(w, &msg, NewResponse(u))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	res := &ListResponse{Users: make([]Response, 0, len(users))}
	for i := range users {
		res.Users = append(res.Users, *NewResponse(&users[i]))
	}
	web.RespondOK(w, nil, res)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	userID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.Find(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, fmt.Sprintf(MsgFmtNotFound, userID), nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, NewResponse(u))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	req, err := web.ParamsFromContext[UpsertRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.Update(r.Context(), userID, Credentials(req))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, fmt.Sprintf(MsgFmtNotFound, userID), nil)
			return
		}
		h.fail(w, err, req)
		return
	}

	msg := MsgUpdated
	web.RespondOK(w, &msg, NewResponse(u))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), userID); err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondNoContent(w)
}

func (h *Handler) fail(w http.ResponseWriter, err error, req UpsertRequest) {
	if errors.Is(err, ErrDuplicate) {
		web.RespondBadRequest(w, err, fmt.Sprintf(MsgFmtDuplicate, req.Name, req.Email), nil)
		return
	}
	web.RespondInternalServerError(w, err)
}
