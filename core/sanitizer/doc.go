// Package sanitizer cleans string fields of decoded request models.
//
// Fields opt in with a `sanitize` tag listing sanitizers applied left to right:
//
//	type OrderRequest struct {
//		model.Request
//		Name  string   `json:"name" xml:"name" sanitize:"trim,single_line,max:64"`
//		Email string   `json:"email" xml:"email" sanitize:"trim,lower"`
//		Tags  []string `json:"tags" xml:"tags" sanitize:"trim,kebab"`
//	}
//
//	err := sanitizer.SanitizeStruct(&req)
//
// Unknown sanitizer names fail with ErrUnknownSanitizer so typos in tags surface
// on the first request instead of being ignored. Unit adapts SanitizeStruct to a
// strategy chain so it can run ahead of validation rules.
package sanitizer
