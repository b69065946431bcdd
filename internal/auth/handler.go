package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

type AuthService interface {
	Authenticator
	Login(ctx context.Context, name, password string) (*Token, error)
}

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.String("password", "*"),
	)
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.svc.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgLoggedIn
	res := &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   TokenType,
		ExpiresIn:   token.ExpiresIn,
	}
	web.RespondOK(w, &msg, res)
}
