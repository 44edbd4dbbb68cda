package audit

import (
	"fmt"
	"time"
)

// Actions recorded by the request sanitization pipeline.
const (
	ActionInjectionBlocked          = "input.injection_blocked"
	ActionPrototypePollutionBlocked = "input.prototype_pollution_blocked"
)

// Event is a single security audit record.
type Event struct {
	ID        string    `json:"id" bson:"_id"`
	Action    string    `json:"action" bson:"action"`
	Code      string    `json:"code,omitempty" bson:"code,omitempty"`
	RequestID string    `json:"request_id,omitempty" bson:"request_id,omitempty"`
	IP        string    `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	Method    string    `json:"method,omitempty" bson:"method,omitempty"`
	Path      string    `json:"path,omitempty" bson:"path,omitempty"`
	Source    string    `json:"source,omitempty" bson:"source,omitempty"`
	KeyPath   string    `json:"key_path,omitempty" bson:"key_path,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Validate checks if the event has all required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	return nil
}
