package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// movieSortFields is the whitelist of sortable columns. Anything else in the
// sort parameter is rejected at the boundary.
var movieSortFields = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"title":       true,
	"year":        true,
	"imdb_rating": true,
	"user_rating": true,
	"watch_date":  true,
}

// MovieQueryOptions carries the validated list parameters. Filters are
// combined conjunctively; nil filter pointers mean "not filtered".
type MovieQueryOptions struct {
	Page      int
	Limit     int
	SortField string
	SortDesc  bool
	Watched   *bool
	Favorite  *bool
	Title     string
}

// ParseMovieQuery validates GET /api/movies query parameters. Malformed or
// unknown values fail instead of silently falling back to defaults.
func ParseMovieQuery(values url.Values) (MovieQueryOptions, error) {
	opts := MovieQueryOptions{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortField: "created_at",
		SortDesc:  true,
	}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return opts, fmt.Errorf("invalid page parameter %q: must be a positive integer", raw)
		}
		opts.Page = page
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return opts, fmt.Errorf("invalid limit parameter %q: must be a positive integer", raw)
		}
		if limit > MaxLimit {
			return opts, fmt.Errorf("invalid limit parameter %q: must not exceed %d", raw, MaxLimit)
		}
		opts.Limit = limit
	}

	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		field := raw
		desc := false
		if strings.HasPrefix(raw, "-") {
			field = raw[1:]
			desc = true
		}
		if !movieSortFields[field] {
			return opts, fmt.Errorf("invalid sort field %q", field)
		}
		opts.SortField = field
		opts.SortDesc = desc
	}

	if raw := strings.TrimSpace(values.Get("watched")); raw != "" {
		watched, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid watched parameter %q: must be a boolean", raw)
		}
		opts.Watched = &watched
	}

	if raw := strings.TrimSpace(values.Get("favorite")); raw != "" {
		favorite, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid favorite parameter %q: must be a boolean", raw)
		}
		opts.Favorite = &favorite
	}

	opts.Title = strings.TrimSpace(values.Get("title"))

	return opts, nil
}

// Offset converts the page number to a row offset.
func (o MovieQueryOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// OrderClause renders the ORDER BY expression with an id tiebreak so paging
// is stable when the sort key has duplicates.
func (o MovieQueryOptions) OrderClause() string {
	dir := "asc"
	if o.SortDesc {
		dir = "desc"
	}
	return fmt.Sprintf("%s %s, id %s", o.SortField, dir, dir)
}
