package transform

import (
	"github.com/paramvora-homewiz/formsync/models"
)

// operatorAliases maps historical operator form field names onto canonical
// ones. First present alias wins; the canonical name is always tried first.
var operatorAliases = map[string][]string{
	"name":                     {"operator_name", "full_name"},
	"email":                    {"email_address", "operator_email"},
	"phone":                    {"phone_number", "contact_phone"},
	"role":                     {"title", "job_title"},
	"operator_type":            {"type"},
	"notification_preferences": {"notification_preference"},
	"date_joined":              {"join_date"},
	"last_active":              {"last_active_date"},
}

// Operator maps raw operator form input onto the canonical record. Operator
// IDs are backend-assigned integers and are carried through untouched, never
// generated here.
func Operator(raw RawRecord) models.Operator {
	var rec models.Operator
	if len(raw) == 0 {
		// An empty form has nothing to identify or default; the validator
		// reports the full required set.
		return rec
	}
	r := resolver{raw: raw, aliases: operatorAliases}

	rec.OperatorID = r.integer("operator_id")
	rec.Name = r.str("name")
	rec.Email = r.str("email")
	rec.Phone = r.str("phone")
	rec.Role = r.str("role")
	rec.Active = r.boolean("active", true)
	rec.DateJoined = r.str("date_joined")
	rec.LastActive = r.str("last_active")
	rec.OperatorType = r.str("operator_type")
	rec.NotificationPreferences = r.str("notification_preferences")

	if rec.Name == "" {
		rec.Name = joinNames(r.str("first_name"), r.str("last_name"))
	}

	today := now().UTC().Format(dateLayout)
	if rec.DateJoined == "" {
		rec.DateJoined = today
	}
	if rec.LastActive == "" {
		rec.LastActive = today
	}
	if rec.OperatorType == "" {
		rec.OperatorType = models.DefaultOperatorType
	}
	if rec.NotificationPreferences == "" {
		rec.NotificationPreferences = models.DefaultNotificationPreference
	}
	return rec
}
