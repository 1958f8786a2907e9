// Package pagination normalises page-number pagination inputs and computes
// page windows.
package pagination

import "math"

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int64
	Max     int64
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int64, cfg PageSizeConfig) int64 {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// NormalizePage maps non-positive page numbers to the first page.
func NormalizePage(page int64) int64 {
	if page < 1 {
		return 1
	}
	return page
}

// Window is the half-open row range [Offset, Offset+Size) covered by one
// 1-based page.
type Window struct {
	Page   int64
	Size   int64
	Offset int64
	// Unreachable is set when the first row of the page lies beyond
	// math.MaxInt64. No store can hold such a row, so the page is empty;
	// Offset is pinned to math.MaxInt64 rather than wrapping negative.
	Unreachable bool
}

// NewWindow builds the window for page with size rows per page. Page and
// size are raised to 1 when non-positive.
func NewWindow(page, size int64) Window {
	page = NormalizePage(page)
	if size < 1 {
		size = 1
	}
	if page-1 > math.MaxInt64/size {
		return Window{Page: page, Size: size, Offset: math.MaxInt64, Unreachable: true}
	}
	return Window{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
	}
}

// NextPage returns the page after w when total rows spill past it, or 0 when
// w is the last page.
func (w Window) NextPage(total int64) int64 {
	if w.Size < 1 || total <= 0 {
		return 0
	}
	if w.Unreachable {
		return 0
	}
	pages := (total-1)/w.Size + 1
	if pages > w.Page {
		return w.Page + 1
	}
	return 0
}
