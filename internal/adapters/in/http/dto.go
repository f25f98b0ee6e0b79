package http

import "time"

// NewReservation is the request body for creating a reservation.
// StartTime is optional; when omitted the rental window opens now.
type NewReservation struct {
	Category  string     `json:"category"`
	StartTime *time.Time `json:"startTime,omitempty"`
	Days      int        `json:"days"`
}

// ReturnRequest is the request body for returning a rented vehicle.
type ReturnRequest struct {
	Mileage int `json:"mileage"`
}

// Order is the wire representation of a rental order.
type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Category  string    `json:"category"`
	VehicleID string    `json:"vehicleId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Days      int       `json:"days"`
	Total     string    `json:"total"`
}

// Vehicle is the wire representation of a fleet vehicle.
type Vehicle struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Mileage  int    `json:"mileage"`
}

// FleetCategory is the wire representation of one category's availability.
type FleetCategory struct {
	Category   string `json:"category"`
	Available  int    `json:"available"`
	RatePerDay string `json:"ratePerDay"`
}

// Error is the wire representation of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
