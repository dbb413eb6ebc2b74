package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any paged query can request.
	MaxLimit = 200
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage floors the page number at one.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset converts the page and limit into a SQL offset.
func (p Params) Offset() int {
	return (NormalizePage(p.Page) - 1) * NormalizeLimit(p.Limit)
}

// Normalize returns a copy with both fields clamped to valid values.
func (p Params) Normalize() Params {
	return Params{
		Page:  NormalizePage(p.Page),
		Limit: NormalizeLimit(p.Limit),
	}
}

// TotalPages computes how many pages the row count spans.
func TotalPages(total int64, limit int) int {
	limit = NormalizeLimit(limit)
	if total <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
