package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/TkachenkoRP/spring-booking/internal/auth"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
	"github.com/TkachenkoRP/spring-booking/internal/room"
	"github.com/TkachenkoRP/spring-booking/internal/user"
)

type BookingService interface {
	List(ctx context.Context) ([]Booking, error)
	Create(ctx context.Context, userID int64, params CreateParams) (*Booking, error)
}

var _ BookingService = (*Service)(nil)

type Handler struct {
	svc BookingService
}

func NewHandler(svc BookingService) *Handler {
	return &Handler{svc: svc}
}

// CreateRequest books a room for the authenticated user. UserID is
// accepted for compatibility and ignored.
type CreateRequest struct {
	ArrivalDate   timex.Date `json:"arrivalDate" validate:"required,future"`
	DepartureDate timex.Date `json:"departureDate" validate:"required,future"`
	RoomID        int64      `json:"roomId" validate:"required,min=1"`
	UserID        *int64     `json:"userId,omitempty"`
}

type Response struct {
	ID            int64          `json:"id"`
	ArrivalDate   timex.Date     `json:"arrivalDate"`
	DepartureDate timex.Date     `json:"departureDate"`
	Room          *room.Response `json:"room"`
	User          *user.Response `json:"user"`
}

func NewResponse(b *Booking) *Response {
	res := &Response{
		ID:            b.ID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
	}
	if b.Room != nil {
		res.Room = room.NewResponse(b.Room)
	}
	if b.User != nil {
		res.User = user.NewResponse(b.User)
	}
	return res
}

type ListResponse struct {
	Bookings []Response `json:"bookings"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	res := &ListResponse{Bookings: make([]Response, 0, len(bookings))}
	for i := range bookings {
		res.Bookings = append(res.Bookings, *NewResponse(&bookings[i]))
	}
	web.RespondOK(w, nil, res)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	p, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := CreateParams{
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		RoomID:        req.RoomID,
	}
	b, err := h.svc.Create(r.Context(), p.UserID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			web.RespondBadRequest(w, err, message.ArrivalAfterDeparture, nil)
		case errors.Is(err, ErrRoomUnavailable):
			web.RespondBadRequest(w, err, MsgRoomUnavailable, nil)
		case errors.Is(err, room.ErrNotFound):
			web.RespondNotFound(w, err, fmt.Sprintf(room.MsgFmtNotFound, req.RoomID), nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := MsgCreated
	web.RespondCreated(w, &msg, NewResponse(b))
}
