package interfaces

// EventPublisher receives domain events after a ledger or rule change has
// been applied. A publish failure never rolls back the change.
type EventPublisher interface {
	Publish(topic string, event any) error
}
