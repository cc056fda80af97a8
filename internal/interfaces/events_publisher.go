package interfaces

// EventPublisher delivers ledger events to whoever is listening.
// Delivery is best effort, callers log failures and carry on.
type EventPublisher interface {
	Publish(topic string, event any) error
}
