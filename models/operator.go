package models

// Business defaults supplied when a form omits the field. Defaults are
// filled only when absent, never overwritten.
const (
	DefaultOperatorType           = "LEASING_AGENT"
	DefaultNotificationPreference = "EMAIL"
)

// Operator is the canonical record for a property-side staff member.
// OperatorID is the backend's integer primary key; it stays nil until the
// persistence layer assigns one.
type Operator struct {
	OperatorID              *int   `json:"operator_id,omitempty"`
	Name                    string `json:"name"`
	Email                   string `json:"email"`
	Phone                   string `json:"phone,omitempty"`
	Role                    string `json:"role,omitempty"`
	Active                  bool   `json:"active"`
	DateJoined              string `json:"date_joined,omitempty"`
	LastActive              string `json:"last_active,omitempty"`
	OperatorType            string `json:"operator_type,omitempty"`
	NotificationPreferences string `json:"notification_preferences,omitempty"`
}
