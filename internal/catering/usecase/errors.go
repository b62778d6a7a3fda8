package usecase

import "errors"

var (
	ErrInvalidID            = errors.New("invalid object ID")
	ErrMealNotFound         = errors.New("meal not found")
	ErrUpcomingMealNotFound = errors.New("upcoming meal not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrRequestNotFound      = errors.New("meal request not found or already delivered")
	ErrPaymentsDisabled     = errors.New("payment provider is not configured")
)

// Domain event types published on the shared bus.
const (
	EventMealPublished    = "meal.published"
	EventRequestDelivered = "request.delivered"
	EventPaymentRecorded  = "payment.recorded"
)
