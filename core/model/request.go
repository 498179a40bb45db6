package model

import "slices"

// Request is the base carrier for inbound data.
// All of its fields are request metadata and never travel on the wire.
type Request struct {
	Page    int         `json:"-" xml:"-"`
	PerPage int         `json:"-" xml:"-"`
	Search  string      `json:"-" xml:"-"`
	Fields  []string    `json:"-" xml:"-"`
	Sorted  []SortField `json:"-" xml:"-"`
}

// Requester is implemented by every type embedding Request.
type Requester interface {
	RequestBase() *Request
}

// RequestBase returns the embedded base request.
func (r *Request) RequestBase() *Request {
	return r
}

// Merge copies meta values from prior into r wherever r has none of its own.
// Values already set on r win. Slices are replaced, never appended, so merging
// the same prior twice yields the same result.
func (r *Request) Merge(prior *Request) {
	if prior == nil || prior == r {
		return
	}
	if r.Page == 0 {
		r.Page = prior.Page
	}
	if r.PerPage == 0 {
		r.PerPage = prior.PerPage
	}
	if r.Search == "" {
		r.Search = prior.Search
	}
	if len(r.Fields) == 0 {
		r.Fields = slices.Clone(prior.Fields)
	}
	if len(r.Sorted) == 0 {
		r.Sorted = slices.Clone(prior.Sorted)
	}
}

// Offset returns the zero-based index of the first item on the requested page.
func (r *Request) Offset() int {
	if r.Page <= 1 || r.PerPage <= 0 {
		return 0
	}
	return (r.Page - 1) * r.PerPage
}

// HasField reports whether name was requested explicitly.
// An empty selection means all fields.
func (r *Request) HasField(name string) bool {
	return len(r.Fields) == 0 || slices.Contains(r.Fields, name)
}

// MergeRequest merges the meta fields of prior into fresh when both embed Request.
func MergeRequest(fresh, prior any) {
	f, ok := fresh.(Requester)
	if !ok {
		return
	}
	p, ok := prior.(Requester)
	if !ok {
		return
	}
	f.RequestBase().Merge(p.RequestBase())
}
