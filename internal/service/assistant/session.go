package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"barberchat/internal/extract"
	"barberchat/internal/models"
)

// Gateway is the boundary to the external text-completion service.
type Gateway interface {
	Complete(ctx context.Context, turns []*models.Turn) (string, error)
}

// Result carries the outcome of one chat round trip. Confidence is a field
// completeness heuristic (see extract.Confidence), not a model probability.
type Result struct {
	Response    string
	Appointment *models.Appointment
	Confidence  float64
}

// Session mediates one conversation with the model. It owns the ordered
// turn history exclusively; the mutex serializes submissions so turns
// within the conversation never interleave or reorder.
type Session struct {
	gateway Gateway

	mu    sync.Mutex
	turns []*models.Turn
}

// NewSession builds an empty session over the given gateway.
func NewSession(gateway Gateway) *Session {
	return &Session{gateway: gateway}
}

// Submit appends the user turn, replays the full history (system
// instruction first) to the gateway, records the reply, and extracts an
// appointment candidate from it. A failed round trip leaves the history
// exactly as it was.
func (s *Session) Submit(ctx context.Context, userText string) (*Result, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, errors.New("message cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, &models.Turn{Role: models.RoleUser, Content: userText})

	messages := make([]*models.Turn, 0, len(s.turns)+1)
	messages = append(messages, &models.Turn{Role: models.RoleSystem, Content: systemPrompt})
	messages = append(messages, s.turns...)

	reply, err := s.gateway.Complete(ctx, messages)
	if err != nil {
		s.turns = s.turns[:len(s.turns)-1]
		return nil, err
	}
	s.turns = append(s.turns, &models.Turn{Role: models.RoleAssistant, Content: reply})

	appointment := extract.FromReply(reply)
	return &Result{
		Response:    reply,
		Appointment: appointment,
		Confidence:  extract.Confidence(appointment),
	}, nil
}

// History returns a copy of the ordered turn sequence.
func (s *Session) History() []*models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]*models.Turn, 0, len(s.turns))
	for _, turn := range s.turns {
		copied := *turn
		turns = append(turns, &copied)
	}
	return turns
}

// Reset clears the turn sequence. No other side effect.
func (s *Session) Reset() {
	s.mu.Lock()
	s.turns = nil
	s.mu.Unlock()
}

// ExtractFromConversation sends the labeled transcript as a one-off
// extraction request, separate from the live chat prompt. It returns a
// candidate only when service, date, and time are all present; replies that
// do not parse count as "no candidate", never as an error. Gateway failures
// do propagate.
func (s *Session) ExtractFromConversation(ctx context.Context) (*models.Appointment, error) {
	s.mu.Lock()
	transcript := formatTranscript(s.turns)
	empty := len(s.turns) == 0
	s.mu.Unlock()

	if empty {
		return nil, nil
	}

	messages := []*models.Turn{
		{Role: models.RoleSystem, Content: extractionSystemPrompt},
		{Role: models.RoleUser, Content: extractionPrompt(transcript)},
	}
	reply, err := s.gateway.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	raw := strings.TrimSpace(extract.StripFences(strings.TrimSpace(reply)))
	var appointment models.Appointment
	if err := json.Unmarshal([]byte(raw), &appointment); err != nil {
		return nil, nil
	}
	if !filled(appointment.Service) || !filled(appointment.Date) || !filled(appointment.Time) {
		return nil, nil
	}
	return &appointment, nil
}

func filled(field *string) bool {
	return field != nil && *field != ""
}
