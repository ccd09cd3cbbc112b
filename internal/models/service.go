package models

// ServiceDefinition describes one bookable service. Static reference data,
// read-only at runtime.
type ServiceDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
}
