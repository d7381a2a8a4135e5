package listquery

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is the sanitized filter spec for a list request. Everything past
// this type has already been whitelisted; repositories trust it.
type Params struct {
	Search    string
	Category  string
	SortBy    SortField
	SortOrder SortOrder
	Page      int
}

// Sanitize normalizes raw query parameters against the given sort whitelist.
// Invalid values are silently coerced to defaults, never rejected: malformed
// or adversarial query strings must not reach the SQL layer and must not
// fail the request.
func Sanitize(q url.Values, allowed []SortField) Params {
	p := Params{
		Search:    strings.TrimSpace(q.Get("search")),
		Category:  strings.TrimSpace(q.Get("category")),
		SortBy:    SortCreatedAt,
		SortOrder: OrderDesc,
		Page:      1,
	}

	sortBy := SortField(q.Get("sort_by"))
	for _, f := range allowed {
		if sortBy == f {
			p.SortBy = f
			break
		}
	}

	switch strings.ToLower(q.Get("sort_order")) {
	case "asc":
		p.SortOrder = OrderAsc
	case "desc":
		p.SortOrder = OrderDesc
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		p.Page = page
	}

	return p
}

// Values encodes the active filters back into a query string, used to carry
// them across pagination links.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	v.Set("sort_by", string(p.SortBy))
	v.Set("sort_order", string(p.SortOrder))
	return v
}

// Offset converts the page number into a row offset for the fixed page size.
func (p Params) Offset() int {
	return (p.Page - 1) * PerPage
}
