package pipeline

// Notification severities.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Surface is the injected capability for user-facing output. The pipeline
// never touches a display directly, so it is testable without one. Notify is
// non-blocking; Confirm blocks its caller until the operator answers.
type Surface interface {
	Notify(message, severity string)
	Confirm(title, message string) (bool, error)
}

// NopSurface discards notifications and answers every confirmation with the
// configured value. Used by the CLI's non-interactive mode and by tests.
type NopSurface struct {
	ConfirmAnswer bool
}

func (n NopSurface) Notify(message, severity string) {}

func (n NopSurface) Confirm(title, message string) (bool, error) {
	return n.ConfirmAnswer, nil
}
