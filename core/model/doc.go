// Package model defines the base request and response carriers exchanged through the
// command dispatcher.
//
// Application models embed the base types and tag their wire fields with identical
// json and xml names, so both codecs produce the same field naming:
//
//	type PingRequest struct {
//		model.Request
//		Message string `json:"message" xml:"message"`
//	}
//
//	type PingResponse struct {
//		model.Response
//		Reply string `json:"reply" xml:"reply"`
//	}
//
// # Request meta fields
//
// Paging, search, field selection and sorting live on Request and are wire-transient:
// they are never encoded and never read from a payload. They are populated from query
// parameters with ParseQuery before the body is decoded, and the dispatcher merges them
// into the freshly decoded request with Merge.
//
//	req := model.ParseQuery(url.Values{
//		"page":   {"2"},
//		"fields": {"id,,name"},
//		"sort":   {"+name,-created_at"},
//	})
//	// req.Fields == []string{"id", "name"}
//	// req.Sorted == []SortField{{"name", Ascending}, {"created_at", Descending}}
//
// # Responses
//
// Response carries a numeric code (0 = success) and optional paging echo fields.
// ErrorResponse adds a localized message and a diagnostic description; the description
// stays out of the wire payload.
package model
