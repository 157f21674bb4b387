package validate

import (
	"github.com/paramvora-homewiz/formsync/enums"
	"github.com/paramvora-homewiz/formsync/models"
)

// Operator validates a canonical operator record.
func Operator(rec models.Operator) Result {
	r := newResult()

	// required
	requireString(r, "name", rec.Name)
	requireString(r, "email", rec.Email)

	// enum
	checkEnum(r, "operator_type", rec.OperatorType, enums.OperatorType)
	checkEnum(r, "notification_preferences", rec.NotificationPreferences, enums.NotificationPreference)

	// format
	checkEmail(r, "email", rec.Email)
	checkPhone(r, "phone", rec.Phone)
	checkDate(r, "date_joined", rec.DateJoined)
	checkDate(r, "last_active", rec.LastActive)

	return r.finalize()
}
