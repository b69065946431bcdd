package hotel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/TkachenkoRP/spring-booking/internal/model"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/message"
	"github.com/TkachenkoRP/spring-booking/internal/pkg/web"
)

type HotelService interface {
	List(ctx context.Context, f Filter, page model.Page) (*ListResult, error)
	Find(ctx context.Context, hotelID int64) (*Hotel, error)
	Create(ctx context.Context, params Params) (*Hotel, error)
	Update(ctx context.Context, hotelID int64, params Params) (*Hotel, error)
	Delete(ctx context.Context, hotelID int64) error
	Vote(ctx context.Context, hotelID int64, mark int) (*Hotel, error)
}

var _ HotelService = (*Service)(nil)

type Handler struct {
	svc HotelService
}

func NewHandler(svc HotelService) *Handler {
	return &Handler{svc: svc}
}

type UpsertRequest struct {
	Name                   string  `json:"name" validate:"required,max=255"`
	Title                  string  `json:"title" validate:"required,max=255"`
	City                   string  `json:"city" validate:"required,max=255"`
	Address                string  `json:"address" validate:"required,max=255"`
	DistanceFromCityCenter float64 `json:"distanceFromCityCenter" validate:"gt=0"`
}

type Response struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	Title                  string    `json:"title"`
	City                   string    `json:"city"`
	Address                string    `json:"address"`
	DistanceFromCityCenter float64   `json:"distanceFromCityCenter"`
	Rating                 float64   `json:"rating"`
	NumberOfRatings        int       `json:"numberOfRatings"`
	CreateAt               time.Time `json:"createAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func NewResponse(h *Hotel) *Response {
	return &Response{
		ID:                     h.ID,
		Name:                   h.Name,
		Title:                  h.Title,
		City:                   h.City,
		Address:                h.Address,
		DistanceFromCityCenter: h.DistanceFromCityCenter,
		Rating:                 h.Rating,
		NumberOfRatings:        h.NumberOfRatings,
		CreateAt:               h.CreatedAt,
		UpdatedAt:              h.UpdatedAt,
	}
}

type ListResponse struct {
	Hotels     []Response `json:"hotels"`
	TotalCount int64      `json:"totalCount"`
	PageSize   int        `json:"pageSize"`
	PageNumber int        `json:"pageNumber"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	page, err := web.QueryPage(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	result, err := h.svc.List(r.Context(), f, page)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	res := &ListResponse{
		Hotels:     make([]Response, 0, len(result.Hotels)),
		TotalCount: result.TotalCount,
		PageSize:   result.Page.Size,
		PageNumber: result.Page.Number,
	}
	for i := range result.Hotels {
		res.Hotels = append(res.Hotels, *NewResponse(&result.Hotels[i]))
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
	f.Title = web.QueryString(r, "title")
	f.City = web.QueryString(r, "city")
	f.Address = web.QueryString(r, "address")
	if f.Distance, err = web.QueryFloat(r, "distance"); err != nil {
		return f, err
	}
	if f.Rating, err = web.QueryFloat(r, "rating"); err != nil {
		return f, err
	}
	if f.NumberOfRatings, err = web.QueryInt(r, "numberOfRatings"); err != nil {
		return f, err
	}
	return f, nil
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	hotelID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	found, err := h.svc.Find(r.Context(), hotelID)
	if err != nil {
		h.fail(w, err, hotelID)
		return
	}

	web.RespondOK(w, nil, NewResponse(found))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpsertRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.Create(r.Context(), Params(req))
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgCreated
	web.RespondCreated(w, &msg, NewResponse(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	hotelID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	req, err := web.ParamsFromContext[UpsertRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.Update(r.Context(), hotelID, Params(req))
	if err != nil {
		h.fail(w, err, hotelID)
		return
	}

	msg := MsgUpdated
	web.RespondOK(w, &msg, NewResponse(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	hotelID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), hotelID); err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondNoContent(w)
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	hotelID, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	mark, err := web.PathInt(r, "mark")
	if err != nil {
		web.RespondBadRequest(w, err, MsgInvalidMark, nil)
		return
	}

	voted, err := h.svc.Vote(r.Context(), hotelID, mark)
	if err != nil {
		h.fail(w, err, hotelID)
		return
	}

	msg := MsgVoted
	web.RespondOK(w, &msg, NewResponse(voted))
}

func (h *Handler) fail(w http.ResponseWriter, err error, hotelID int64) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(MsgFmtNotFound, hotelID), nil)
	case errors.Is(err, ErrInvalidMark):
		web.RespondBadRequest(w, err, MsgInvalidMark, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
