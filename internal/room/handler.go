package room

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/hotel"
	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	timex "github.com/TkachenkoRP/spring-booking/internal/pkg/time"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

var errDateInput = errors.New("malformed date")

type RoomService interface {
	List(ctx context.Context, f Filter, page model.Page) ([]Room, error)
	Find(ctx context.Context, roomID int64) (*Room, error)
	Create(ctx context.Context, params Params) (*Room, error)
	Update(ctx context.Context, roomID int64, params Params) (*Room, error)
	Delete(ctx context.Context, roomID int64) error
}

var _ RoomService = (*Service)(nil)

type Handler struct {
	svc RoomService
}

func NewHandler(svc RoomService) *Handler {
	return &Handler{svc: svc}
}

type UpsertRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
	Number      int     `json:"number" validate:"required,min=1,max=100"`
	Price       float64 `json:"price" validate:"gt=0"`
	Capacity    int     `json:"capacity" validate:"min=1,max=127"`
	HotelID     int64   `json:"hotelId" validate:"required,min=1"`
}

type Response struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Number      int       `json:"number"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	CreateAt    time.Time `json:"createAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	HotelName   string    `json:"hotelName"`
	HotelID     int64     `json:"hotelId"`
}

func NewResponse(rm *Room) *Response {
	return &Response{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		Number:      rm.Number,
		Price:       rm.Price,
		Capacity:    rm.Capacity,
		CreateAt:    rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
		HotelName:   rm.HotelName,
		HotelID:     rm.HotelID,
	}
}

type ListResponse struct {
	Rooms      []Response `json:"rooms"`
	PageSize   int        `json:"pageSize"`
	PageNumber int        `json:"pageNumber"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		if errors.Is(err, errDateInput) {
			web.RespondBadRequest(w, err, message.DateInputError, nil)
			return
		}
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	page, err := web.QueryPage(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	rooms, err := h.svc.List(r.Context(), f, page)
	if err != nil {
		h.fail(w, err, 0)
		return
	}

	res := &ListResponse{
		Rooms:      make([]Response, 0, len(rooms)),
		PageSize:   page.Size,
		PageNumber: page.Number,
	}
	for i := range rooms {
		res.Rooms = append(res.Rooms, *NewResponse(&rooms[i]))
	}
	web.RespondOK(w, nil, res)
}

func parseFilter(r *http.Request) (Filter, error) {
	var (
		f   Filter
		err error
	)

	if f.ID, err = web.QueryInt64(r, "id"); err != nil {
		return f, err
	}
	f.Name = web.QueryString(r, "name")
	if f.MinPrice, err = web.QueryFloat(r, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = web.QueryFloat(r, "maxPrice"); err != nil {
		return f, err
	}
	if f.CountGuest, err = web.QueryInt(r, "countGuest"); err != nil {
		return f, err
	}
	if f.HotelID, err = web.QueryInt64(r, "hotelId"); err != nil {
		return f, err
	}

	rawArrival, rawDeparture := web.QueryString(r, "arrivalDate"), web.QueryString(r, "departureDate")
	if rawArrival == nil || rawDeparture == nil {
		return f, nil
	}

	arrival, err := timex.ParseDate(*rawArrival)
	if err != nil {
		return f, errors.Join(errDateInput, err)
	}
	departure, err := timex.ParseDate(*rawDeparture)
	if err != nil {
		return f, errors.Join(errDateInput, err)
	}
	f.Arrival, f.Departure = &arrival, &departure

	return f, nil
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	roomID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	rm, err := h.svc.Find(r.Context(), roomID)
	if err != nil {
		h.fail(w, err, roomID)
		return
	}

	web.RespondOK(w, nil, NewResponse(rm))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpsertRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	rm, err := h.svc.Create(r.Context(), Params(req))
	if err != nil {
		h.failHotel(w, err, req.HotelID, 0)
		return
	}

	msg := MsgCreated
	web.RespondCreated(w, &msg, NewResponse(rm))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	roomID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	req, err := web.ParamsFromContext[UpsertRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	rm, err := h.svc.Update(r.Context(), roomID, Params(req))
	if err != nil {
		h.failHotel(w, err, req.HotelID, roomID)
		return
	}

	msg := MsgUpdated
	web.RespondOK(w, &msg, NewResponse(rm))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), roomID); err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondNoContent(w)
}

func (h *Handler) failHotel(w http.ResponseWriter, err error, hotelID, roomID int64) {
	if errors.Is(err, hotel.ErrNotFound) {
		web.RespondNotFound(w, err, fmt.Sprintf(hotel.MsgFmtNotFound, hotelID), nil)
		return
	}
	h.fail(w, err, roomID)
}

func (h *Handler) fail(w http.ResponseWriter, err error, roomID int64) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(MsgFmtNotFound, roomID), nil)
	case errors.Is(err, ErrInvalidDates):
		web.RespondBadRequest(w, err, message.ArrivalAfterDeparture, nil)
	case errors.Is(err, ErrPastDates):
		web.RespondBadRequest(w, err, message.PastDates, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
