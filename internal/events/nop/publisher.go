package nop

import interfaces "github.com/sheikh-saqib/lender-tracker/internal/interfaces"

// Publisher drops every event. Used when no broker is configured.
type Publisher struct{}

func (Publisher) Publish(topic string, event any) error { return nil }

var _ interfaces.EventPublisher = Publisher{}
