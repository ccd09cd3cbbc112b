// Package extract pulls structured appointment data out of free-form model
// replies and validates it. Extraction is deliberately tolerant: the
// upstream text generator gives no format guarantee, so anything that does
// not parse is treated as "no candidate" rather than an error.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"barberchat/internal/models"
)

var (
	fenceRe     = regexp.MustCompile("(?s)```json\n(.*?)\n```")
	fenceMarkRe = regexp.MustCompile("```json\n?|\n?```")
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// replyPayload is the wire shape the assistant is instructed to emit inside
// a ```json fence. appointment_ready gates the projection and is dropped.
type replyPayload struct {
	AppointmentReady bool    `json:"appointment_ready"`
	Service          *string `json:"service"`
	Date             *string `json:"date"`
	Time             *string `json:"time"`
	BarberName       *string `json:"barber_name"`
	Notes            *string `json:"notes"`
}

// FromReply scans text for the first ```json fenced block and projects it
// to an appointment. Returns nil when there is no fence, the block is not
// valid JSON, or appointment_ready is not true.
func FromReply(text string) *models.Appointment {
	match := fenceRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	var payload replyPayload
	if err := json.Unmarshal([]byte(match[1]), &payload); err != nil {
		return nil
	}
	if !payload.AppointmentReady {
		return nil
	}
	return &models.Appointment{
		Service:    payload.Service,
		Date:       payload.Date,
		Time:       payload.Time,
		BarberName: payload.BarberName,
		Notes:      payload.Notes,
	}
}

// StripFences removes markdown ```json wrappers so a reply that ignored the
// "raw JSON only" instruction can still be parsed.
func StripFences(text string) string {
	return fenceMarkRe.ReplaceAllString(text, "")
}

// Confidence reports how many of the three required fields (service, date,
// time) are filled in, as a fraction of 3. It is a completeness heuristic,
// not a statistical confidence score.
func Confidence(a *models.Appointment) float64 {
	if a == nil {
		return 0.0
	}
	present := 0
	for _, field := range []*string{a.Service, a.Date, a.Time} {
		if field != nil && *field != "" {
			present++
		}
	}
	return float64(present) / 3.0
}

// Validate checks the appointment against the known service ids and the
// date/time formats. Validation is syntactic only: "2024-02-31" and "25:99"
// both pass, because calendar and range checks are out of scope here.
// Errors come back in a fixed order: service, date, time.
func Validate(a *models.Appointment, knownServices []string) (bool, []string) {
	errs := []string{}

	if a == nil {
		a = &models.Appointment{}
	}
	if a.Service == nil || !containsService(knownServices, *a.Service) {
		errs = append(errs, "Invalid service. Must be one of: "+strings.Join(knownServices, ", "))
	}

	switch {
	case a.Date == nil || *a.Date == "":
		errs = append(errs, "Date is required")
	case !datePattern.MatchString(*a.Date):
		errs = append(errs, "Invalid date format. Use YYYY-MM-DD")
	}

	switch {
	case a.Time == nil || *a.Time == "":
		errs = append(errs, "Time is required")
	case !timePattern.MatchString(*a.Time):
		errs = append(errs, "Invalid time format. Use HH:MM")
	}

	return len(errs) == 0, errs
}

func containsService(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, known := range ids {
		if known == id {
			return true
		}
	}
	return false
}
