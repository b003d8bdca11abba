package entity

import "time"

// Notification types.
const (
	NotificationMissingProduction = "Missing Production"
	NotificationMissingOrder      = "Missing Order"
	NotificationLowStock          = "Low Stock"
	NotificationProductionUpdate  = "Production Update"
)

// Notification statuses. The transition is one-way: Pending -> Completed.
const (
	NotificationPending   = "Pending"
	NotificationCompleted = "Completed"
)

// Notification is raised by the reconciler or the daily scheduler when a
// condition becomes true, and completed either by an explicit mark-read or
// automatically once the triggering condition clears.
type Notification struct {
	ID        string
	Date      time.Time
	Type      string
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pending reports whether the notification is still awaiting action.
func (n *Notification) Pending() bool {
	return n.Status == NotificationPending
}
