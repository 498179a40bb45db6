package model

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names recognized by ParseQuery.
const (
	QueryPage    = "page"
	QueryPerPage = "per_page"
	QuerySearch  = "search"
	QueryFields  = "fields"
	QuerySort    = "sort"
)

// ParseQuery builds a Request from query parameters.
// Repeated parameters are joined with commas, so ?fields=a&fields=b equals ?fields=a,b.
// Non-numeric or negative paging values are ignored.
func ParseQuery(values url.Values) *Request {
	req := &Request{
		Page:    parsePositive(values.Get(QueryPage)),
		PerPage: parsePositive(firstNonEmpty(values.Get(QueryPerPage), values.Get("perPage"))),
		Search:  strings.TrimSpace(values.Get(QuerySearch)),
	}
	if v, ok := values[QueryFields]; ok {
		req.Fields = ParseFields(strings.Join(v, ","))
	}
	if v, ok := values[QuerySort]; ok {
		req.Sorted = ParseSort(strings.Join(v, ","))
	}
	return req
}

// Values renders the request meta fields back to query parameters.
func (r *Request) Values() url.Values {
	values := url.Values{}
	if r.Page > 0 {
		values.Set(QueryPage, strconv.Itoa(r.Page))
	}
	if r.PerPage > 0 {
		values.Set(QueryPerPage, strconv.Itoa(r.PerPage))
	}
	if r.Search != "" {
		values.Set(QuerySearch, r.Search)
	}
	if len(r.Fields) > 0 {
		values.Set(QueryFields, strings.Join(r.Fields, ","))
	}
	if len(r.Sorted) > 0 {
		values.Set(QuerySort, FormatSort(r.Sorted))
	}
	return values
}

func parsePositive(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
