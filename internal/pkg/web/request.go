package web

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/TkachenkoRP/spring-booking/internal/model"
)

var (
	ErrMissingParam = errors.New("missing request parameter")
	ErrInvalidParam = errors.New("invalid request parameter")
)

// PathID parses the named path value as a positive int64 id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return id, nil
}

func PathInt(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return n, nil
}

// QueryString returns nil when the parameter is absent or blank.
func QueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := QueryString(r, name)
	if raw == nil {
		return nil, nil
	}

	n, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, *raw)
	}
	return &n, nil
}

func QueryInt(r *http.Request, name string) (*int, error) {
	raw := QueryString(r, name)
	if raw == nil {
		return nil, nil
	}

	n, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, *raw)
	}
	return &n, nil
}

func QueryFloat(r *http.Request, name string) (*float64, error) {
	raw := QueryString(r, name)
	if raw == nil {
		return nil, nil
	}

	f, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, *raw)
	}
	return &f, nil
}

// QueryIntDefault returns def when the parameter is absent.
func QueryIntDefault(r *http.Request, name string, def int) (int, error) {
	n, err := QueryInt(r, name)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return def, nil
	}
	return *n, nil
}

// QueryPage reads pageSize and pageNumber, falling back to the defaults.
// pageNumber is bounded so that Page.Offset cannot overflow.
func QueryPage(r *http.Request) (model.Page, error) {
	page := model.DefaultPage()

	size, err := QueryIntDefault(r, "pageSize", page.Size)
	if err != nil {
		return page, err
	}
	if size < 1 || size > model.MaxPageSize {
		return page, fmt.Errorf("%w: pageSize=%d", ErrInvalidParam, size)
	}

	number, err := QueryIntDefault(r, "pageNumber", page.Number)
	if err != nil {
		return page, err
	}
	if number < 0 || number > math.MaxInt/size {
		return page, fmt.Errorf("%w: pageNumber=%d", ErrInvalidParam, number)
	}

	return model.Page{Size: size, Number: number}, nil
}
