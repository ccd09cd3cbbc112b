package models

// Appointment is a tentative appointment record inferred from conversation
// text. Fields are pointers so absent and null survive a JSON round trip.
type Appointment struct {
	Service    *string `json:"service"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	BarberName *string `json:"barber_name"`
	Notes      *string `json:"notes"`
}
