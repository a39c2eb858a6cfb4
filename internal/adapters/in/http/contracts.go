package http

import "time"

// Request and response contracts for the JSON API. Field names follow the
// wire convention of the public API rather than Go conventions.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health probe.
type HealthResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateParcelRequest registers a new parcel with its delivery window.
type CreateParcelRequest struct {
	Address       string    `json:"address"`
	Locality      string    `json:"locality"`
	ScheduleFrom  time.Time `json:"scheduleFrom"`
	ScheduleUntil time.Time `json:"scheduleUntil"`
}

// CreateParcelResponse returns the identifiers the caller needs: the parcel
// ID for subsequent operations and the confirmation code to hand to the
// recipient.
type CreateParcelResponse struct {
	ParcelID         string `json:"parcelId"`
	ConfirmationCode string `json:"confirmationCode"`
}

// ModifyDestinationRequest changes the delivery address of a parcel that
// has not started moving.
type ModifyDestinationRequest struct {
	ParcelID string `json:"parcelId"`
	Address  string `json:"address"`
	Locality string `json:"locality"`
}

// AssignRouteRequest claims an available route for the authenticated agent.
type AssignRouteRequest struct {
	RouteID string `json:"routeId"`
}

// UnassignRouteRequest releases a claimed route back to the pool.
type UnassignRouteRequest struct {
	RouteID string `json:"routeId"`
}

// StartRouteRequest begins the delivery run for a claimed parcel.
type StartRouteRequest struct {
	ParcelID string `json:"parcelId"`
}

// ConfirmDeliveryRequest completes a parcel using the recipient's
// confirmation code.
type ConfirmDeliveryRequest struct {
	ParcelID string `json:"parcelId"`
	Code     string `json:"code"`
}

// SuccessResponse acknowledges a state-changing operation.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AvailableRoute is the read model for a claimable route.
type AvailableRoute struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	Address       string    `json:"address"`
	Locality      string    `json:"locality"`
	ScheduleFrom  time.Time `json:"scheduleFrom"`
	ScheduleUntil time.Time `json:"scheduleUntil"`
}

// UncompletedParcel is the read model for a parcel still in flight.
type UncompletedParcel struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	Locality string `json:"locality"`
	Status   string `json:"status"`
}
