package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ja-he/todo/internal/model"
)

var (
	// ErrUnavailable indicates the plan server could not be reached or did not
	// answer in time.
	ErrUnavailable = errors.New("plan server unavailable")

	// ErrDecode indicates the plan server answered with data that could not be
	// decoded.
	ErrDecode = errors.New("malformed response from plan server")
)

// Status is the status with which the plan server answered a request.
type Status struct {
	Code int
	Text string
}

// NewStatus creates a status for the given code with the standard text.
func NewStatus(code int) Status {
	return Status{Code: code, Text: http.StatusText(code)}
}

// String returns the status as e.g. '404 Not Found'.
func (s Status) String() string {
	if s.Text == "" {
		return fmt.Sprint(s.Code)
	}
	return fmt.Sprintf("%d %s", s.Code, s.Text)
}

// Success reports whether the status is 2xx.
func (s Status) Success() bool {
	return s.Code >= 200 && s.Code < 300
}

// PlanProvider is the abstracted plan storage.
//
// Plans are identified by whatever the backend uses as identifiers; IDs are
// passed through as given by the user and never validated here, so that the
// backend can report on unknown or malformed ones.
// Every method performs a single request and reports the status it got, even
// when it is not a success; an error is only returned when no usable answer
// was received.
type PlanProvider interface {
	AddPlan(context.Context, model.PlanDraft) (Status, error)

	GetPlanIDs(context.Context) (Status, []int, error)
	GetPlan(ctx context.Context, id string) (Status, *model.Plan, error)

	RemovePlan(ctx context.Context, id string) (Status, error)
	RemoveAllPlans(context.Context) (Status, error)
}
