package model

// CodeSuccess is the response code of a successful command.
const CodeSuccess = 0

// Response is the base carrier for outbound data.
type Response struct {
	Code    int   `json:"code" xml:"code"`
	Page    int   `json:"page,omitempty" xml:"page,omitempty"`
	PerPage int   `json:"perPage,omitempty" xml:"perPage,omitempty"`
	Total   int64 `json:"total,omitempty" xml:"total,omitempty"`
}

// Responder is implemented by every type embedding Response.
type Responder interface {
	ResponseBase() *Response
}

// ResponseBase returns the embedded base response.
func (r *Response) ResponseBase() *Response {
	return r
}

// IsSuccess reports whether the response code signals success.
func (r *Response) IsSuccess() bool {
	return r.Code == CodeSuccess
}

// EchoPaging copies the paging values of req into the response along with the total count.
func (r *Response) EchoPaging(req *Request, total int64) {
	if req != nil {
		r.Page = req.Page
		r.PerPage = req.PerPage
	}
	r.Total = total
}

// Success returns the default successful response.
func Success() *Response {
	return &Response{Code: CodeSuccess}
}

// ErrorResponse is a Response describing a failed command.
type ErrorResponse struct {
	Response
	Message     string `json:"message" xml:"message"`
	Description string `json:"-" xml:"-"`
}

// NewError creates an error response.
func NewError(code int, message, description string) *ErrorResponse {
	return &ErrorResponse{
		Response:    Response{Code: code},
		Message:     message,
		Description: description,
	}
}
