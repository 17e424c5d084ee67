package service

// MaxPageSize ограничивает размер страницы списков.
const MaxPageSize = 100

// DefaultPageSize используется, если размер страницы не задан.
const DefaultPageSize = 20

// NormalizePage приводит номер и размер страницы к допустимым значениям.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

func pageBounds(page, size int) (limit, offset uint64) {
	page, size = NormalizePage(page, size)
	return uint64(size), uint64((page - 1) * size)
}
