// Package catalog holds the static barbershop reference data: the bookable
// services and the shop's business hours.
package catalog

import "barberchat/internal/models"

// services is ordered; the order is part of the public API (listings and
// validation messages enumerate it as-is).
var services = []models.ServiceDefinition{
	{
		ID:          "haircut",
		Name:        "Corte de Cabelo",
		Price:       25.00,
		Duration:    30,
		Description: "Professional haircut",
	},
	{
		ID:          "hair_eyebrow",
		Name:        "Cabelo e Sobrancelha",
		Price:       30.00,
		Duration:    45,
		Description: "Haircut with eyebrow trim",
	},
	{
		ID:          "full_service",
		Name:        "Serviço Completo",
		Price:       40.00,
		Duration:    60,
		Description: "Haircut, eyebrow trim, and beard trim",
	},
	{
		ID:          "hair_beard",
		Name:        "Cabelo e Barba",
		Price:       35.00,
		Duration:    50,
		Description: "Haircut with beard trim",
	},
	{
		ID:          "beard_only",
		Name:        "Somente Barba",
		Price:       20.00,
		Duration:    20,
		Description: "Beard trim only",
	},
}

// Services returns the full catalog in listing order.
func Services() []models.ServiceDefinition {
	out := make([]models.ServiceDefinition, len(services))
	copy(out, services)
	return out
}

// IDs returns the known service identifiers in catalog order.
func IDs() []string {
	ids := make([]string, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}
	return ids
}

// Lookup returns the service with the given id.
func Lookup(id string) (models.ServiceDefinition, bool) {
	for _, svc := range services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.ServiceDefinition{}, false
}

// BusinessDay is the opening window for one weekday.
type BusinessDay struct {
	Start string
	End   string
}

// BusinessHours maps lowercase weekday names to opening windows. Sunday is
// absent: the shop is closed.
var BusinessHours = map[string]BusinessDay{
	"monday":    {Start: "09:00", End: "18:00"},
	"tuesday":   {Start: "09:00", End: "18:00"},
	"wednesday": {Start: "09:00", End: "18:00"},
	"thursday":  {Start: "09:00", End: "18:00"},
	"friday":    {Start: "09:00", End: "18:00"},
	"saturday":  {Start: "09:00", End: "18:00"},
}
