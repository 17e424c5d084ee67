package http

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"maintenance-service/internal/model"
	"maintenance-service/internal/service"
)

// pageParams разбирает page и page_size. Размер страницы ограничен service.MaxPageSize.
func (h *Handler) pageParams(r *http.Request) (int, int, error) {
	q := r.URL.Query()

	page := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, service.ErrNotFound("Invalid page.")
		}
		page = n
	}

	size := h.opts.DefaultPageSize
	if raw := q.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, service.ErrField("page_size", "A valid integer is required.")
		}
		size = n
	}
	if size > service.MaxPageSize {
		size = service.MaxPageSize
	}
	// page*size должен помещаться в int, иначе смещение переполнится.
	if page > math.MaxInt/size {
		return 0, 0, service.ErrNotFound("Invalid page.")
	}
	return page, size, nil
}

// newPage собирает конверт {count, next, previous, results} со ссылками на соседние страницы.
func newPage[T any](r *http.Request, items []T, total, page, size int) model.Page[T] {
	if items == nil {
		items = []T{}
	}
	p := model.Page[T]{Count: total, Results: items}
	if page*size < total {
		next := pageURL(r, page+1)
		p.Next = &next
	}
	if page > 1 {
		prev := pageURL(r, page-1)
		p.Previous = &prev
	}
	return p
}

func pageURL(r *http.Request, page int) string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}

	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
