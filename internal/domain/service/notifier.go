// Package service defines interfaces for domain-level collaborators that are
// implemented by the infrastructure layer.
package service

// Severity classifies a notification for display purposes.
type Severity string

const (
	// SeveritySuccess marks a confirmation of a completed operation.
	SeveritySuccess Severity = "success"
	// SeverityInfo marks a neutral status message.
	SeverityInfo Severity = "info"
	// SeverityError marks a rejected or failed operation.
	SeverityError Severity = "error"
)

// Notifier is the one-way toast boundary. Delivery is best-effort; dropped
// notifications never affect state consistency.
type Notifier interface {
	Notify(message string, severity Severity)
}
