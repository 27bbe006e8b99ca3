package notify

import (
	"auction-house/utils"

	model "auction-house/internal/models"
)

// Notifier is the fire-and-forget event contract consumed by the external
// delivery collaborator. Implementations must never block and must swallow
// delivery failures; emission cannot fail the triggering operation.
type Notifier interface {
	Notify(event model.NotificationEvent)
}

// LogNotifier emits notification events to the structured log. It stands in
// for a real delivery channel (websocket, push) behind the same contract.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the event.
func (n *LogNotifier) Notify(event model.NotificationEvent) {
	utils.Info("notification", map[string]any{
		"type":    string(event.Type),
		"user_id": event.UserID,
		"task_id": event.TaskID,
		"message": event.Message,
	})
}
