package dto

import "github.com/go-playground/validator/v10"

// ErrorResponse is the HTTP error body: {"message": "..."} plus the status
// code, which is the whole error contract of the API.
type ErrorResponse struct {
	Message string `json:"message"`
}

var validate = validator.New()

// Validate runs the struct tag validations of a request DTO.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// DateRangeQuery is the optional inclusive day-window filter accepted by the
// list endpoints. Both bounds are ISO date strings; the filter applies only
// when both are present.
type DateRangeQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// HasRange reports whether both bounds were supplied.
func (q DateRangeQuery) HasRange() bool {
	return q.StartDate != "" && q.EndDate != ""
}
