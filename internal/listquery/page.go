package listquery

import (
	"fmt"
	"strconv"
	"strings"
)

// PerPage is the fixed page size of every listing.
const PerPage = 10

// Link is one pagination link. URL is nil for a disabled previous/next.
type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Result is the transport envelope for a paginated listing.
type Result[T any] struct {
	Data        []T    `json:"data"`
	CurrentPage int    `json:"current_page"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	Links       []Link `json:"links"`
}

// NewResult assembles the envelope for one page. An out-of-range page keeps
// total and last_page intact so the UI can still render page links.
func NewResult[T any](data []T, total int, p Params, basePath string) Result[T] {
	lastPage := (total + PerPage - 1) / PerPage
	if lastPage < 1 {
		lastPage = 1
	}
	if data == nil {
		data = []T{}
	}
	return Result[T]{
		Data:        data,
		CurrentPage: p.Page,
		LastPage:    lastPage,
		PerPage:     PerPage,
		Total:       total,
		Links:       buildLinks(basePath, p, lastPage),
	}
}

// buildLinks renders previous / numbered / next links, carrying the active
// filters forward in every URL.
func buildLinks(basePath string, p Params, lastPage int) []Link {
	pageURL := func(page int) *string {
		v := p.Values()
		v.Set("page", strconv.Itoa(page))
		u := basePath + "?" + v.Encode()
		return &u
	}

	links := make([]Link, 0, lastPage+2)

	prev := Link{Label: "&laquo; Previous"}
	if p.Page > 1 {
		prev.URL = pageURL(p.Page - 1)
	}
	links = append(links, prev)

	for page := 1; page <= lastPage; page++ {
		links = append(links, Link{
			URL:    pageURL(page),
			Label:  fmt.Sprintf("%d", page),
			Active: page == p.Page,
		})
	}

	next := Link{Label: "Next &raquo;"}
	if p.Page < lastPage {
		next.URL = pageURL(p.Page + 1)
	}
	links = append(links, next)

	return links
}

// LikePattern is shared by the repositories: both sides of the comparison are
// lower-cased and the term is wrapped in %...%. LIKE wildcards inside the
// term are deliberately not escaped; a user-supplied % or _ keeps its SQL
// meaning, matching the behavior the listing has always had.
func LikePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
