package validate

import (
	"github.com/paramvora-homewiz/formsync/enums"
	"github.com/paramvora-homewiz/formsync/models"
)

// Tenant validates a canonical tenant record. TenantNationality is free
// text; the closed vocabulary applies to VisaStatus.
func Tenant(rec models.Tenant) Result {
	r := newResult()

	// required
	requireString(r, "tenant_id", rec.TenantID)
	requireString(r, "tenant_name", rec.TenantName)
	requireString(r, "tenant_email", rec.TenantEmail)
	requireString(r, "room_id", rec.RoomID)
	requireString(r, "building_id", rec.BuildingID)

	// enum
	checkEnum(r, "booking_type", rec.BookingType, enums.BookingType)
	checkEnum(r, "visa_status", rec.VisaStatus, enums.VisaStatus)
	checkEnum(r, "status", rec.Status, enums.TenantStatus)
	checkEnum(r, "payment_status", rec.PaymentStatus, enums.PaymentStatus)
	checkEnum(r, "communication_preference", rec.CommunicationPreference, enums.CommunicationPreference)
	checkEnum(r, "account_status", rec.AccountStatus, enums.AccountStatus)
	checkEnum(r, "emergency_contact_relation", rec.EmergencyContactRelation, enums.EmergencyContactRelation)

	// format
	checkEmail(r, "tenant_email", rec.TenantEmail)
	checkPhone(r, "phone", rec.Phone)
	checkPhone(r, "emergency_contact_phone", rec.EmergencyContactPhone)
	checkDate(r, "lease_start_date", rec.LeaseStartDate)
	checkDate(r, "lease_end_date", rec.LeaseEndDate)

	// cross-field
	if rec.LeaseStartDate != "" && rec.LeaseEndDate != "" {
		checkDateOrder(r, "lease_end_date", rec.LeaseStartDate, rec.LeaseEndDate,
			"lease end date must be after lease start date")
	}
	checkFloatMin(r, "deposit_amount", rec.DepositAmount, 0, "deposit cannot be negative")

	return r.finalize()
}
