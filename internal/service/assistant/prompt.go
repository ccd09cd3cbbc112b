package assistant

import (
	"fmt"
	"strings"

	"barberchat/internal/catalog"
	"barberchat/internal/models"
)

// systemPrompt drives the live chat. It is assembled once from the catalog
// so the advertised services, prices, and hours can never drift from the
// data the validator checks against.
var systemPrompt = buildSystemPrompt()

func buildSystemPrompt() string {
	ids := strings.Join(catalog.IDs(), "|")
	hours := catalog.BusinessHours["monday"]

	var b strings.Builder
	b.WriteString("You are a professional and friendly barbershop appointment assistant. " +
		"Your role is to help customers schedule haircut appointments.\n\n")
	b.WriteString("You should:\n")
	b.WriteString("1. Greet customers warmly and ask about their desired service\n")
	b.WriteString("2. Extract appointment details from the conversation (date, time, service type, barber preference, notes)\n")
	b.WriteString("3. Provide information about available services and their prices:\n")
	for _, svc := range catalog.Services() {
		fmt.Fprintf(&b, "   - %s (%s): R$%.2f, %d minutes\n", svc.Name, svc.ID, svc.Price, svc.Duration)
	}
	fmt.Fprintf(&b, "4. Suggest available time slots (business hours: %s - %s, Monday-Saturday)\n", hours.Start, hours.End)
	b.WriteString("5. Confirm all details before finalizing the appointment\n")
	b.WriteString("6. Be helpful and answer questions about services, pricing, and availability\n")
	b.WriteString("7. Always respond in Portuguese (Brazilian Portuguese)\n\n")
	b.WriteString("When you have extracted enough information to create an appointment, respond with a JSON block at the end:\n")
	b.WriteString("```json\n")
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"appointment_ready\": true,\n  \"service\": \"%s\",\n", ids)
	b.WriteString("  \"date\": \"YYYY-MM-DD\",\n")
	b.WriteString("  \"time\": \"HH:MM\",\n")
	b.WriteString("  \"barber_name\": \"name or null\",\n")
	b.WriteString("  \"notes\": \"any special notes\"\n")
	b.WriteString("}\n")
	b.WriteString("```\n\n")
	b.WriteString("If you need more information, respond naturally without the JSON block.")
	return b.String()
}

const extractionSystemPrompt = "You are a data extraction assistant. Extract appointment information from conversations."

// extractionPrompt asks for the appointment fields as raw JSON, null for
// anything unknown. The transcript is inlined, not replayed as turns.
func extractionPrompt(transcript string) string {
	ids := strings.Join(catalog.IDs(), "|")

	var b strings.Builder
	b.WriteString("Based on this conversation history, extract the appointment details if they are complete:\n\n")
	b.WriteString("Conversation:\n")
	b.WriteString(transcript)
	b.WriteString("\n\nPlease respond with ONLY a JSON object (no markdown) with this structure:\n")
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"service\": \"%s or null\",\n", ids)
	b.WriteString("  \"date\": \"YYYY-MM-DD or null\",\n")
	b.WriteString("  \"time\": \"HH:MM or null\",\n")
	b.WriteString("  \"barber_name\": \"name or null\",\n")
	b.WriteString("  \"notes\": \"special notes or null\"\n")
	b.WriteString("}")
	return b.String()
}

// formatTranscript labels each turn for the one-off extraction prompt.
func formatTranscript(turns []*models.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		label := "Assistant"
		if turn.Role == models.RoleUser {
			label = "Customer"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, turn.Content))
	}
	return strings.Join(lines, "\n")
}
