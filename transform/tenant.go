package transform

import (
	"time"

	"github.com/paramvora-homewiz/formsync/models"
	"github.com/paramvora-homewiz/formsync/utils"
)

var tenantAliases = map[string][]string{
	"tenant_name":                {"name", "full_name"},
	"tenant_email":               {"email", "email_address"},
	"phone":                      {"phone_number", "tenant_phone"},
	"lease_start_date":           {"start_date"},
	"lease_end_date":             {"end_date"},
	"tenant_nationality":         {"nationality"},
	"status":                     {"tenant_status"},
	"deposit_amount":             {"deposit"},
	"communication_preference":   {"communication"},
	"emergency_contact_relation": {"emergency_contact_relationship"},
	"special_requests":           {"notes"},
}

// Tenant maps raw tenant form input onto the canonical record. A display
// name is merged from separate first/last inputs only when no name field
// was supplied.
func Tenant(raw RawRecord) models.Tenant {
	var rec models.Tenant
	if len(raw) == 0 {
		return rec
	}
	r := resolver{raw: raw, aliases: tenantAliases}

	rec.TenantID = r.str("tenant_id")
	rec.TenantName = r.str("tenant_name")
	rec.TenantEmail = r.str("tenant_email")
	rec.Phone = r.str("phone")
	rec.RoomID = r.str("room_id")
	rec.RoomNumber = r.str("room_number")
	rec.BuildingID = r.str("building_id")
	rec.OperatorID = r.integer("operator_id")
	rec.LeaseStartDate = r.str("lease_start_date")
	rec.LeaseEndDate = r.str("lease_end_date")
	rec.BookingType = r.str("booking_type")
	rec.TenantNationality = r.str("tenant_nationality")
	rec.VisaStatus = r.str("visa_status")
	rec.Status = r.str("status")
	rec.DepositAmount = r.number("deposit_amount")
	rec.PaymentStatus = r.str("payment_status")
	rec.CommunicationPreference = r.str("communication_preference")
	rec.AccountStatus = r.str("account_status")
	rec.EmergencyContactName = r.str("emergency_contact_name")
	rec.EmergencyContactPhone = r.str("emergency_contact_phone")
	rec.EmergencyContactRelation = r.str("emergency_contact_relation")
	rec.SpecialRequests = r.str("special_requests")
	rec.CreatedAt = r.str("created_at")

	if rec.TenantName == "" {
		rec.TenantName = joinNames(r.str("first_name"), r.str("last_name"))
	}

	if rec.TenantID == "" {
		rec.TenantID = utils.GenerateID(models.TenantIDPrefix)
	}
	if rec.Status == "" {
		rec.Status = models.DefaultTenantStatus
	}
	if rec.PaymentStatus == "" {
		rec.PaymentStatus = models.DefaultPaymentStatus
	}
	if rec.AccountStatus == "" {
		rec.AccountStatus = models.DefaultAccountStatus
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = now().UTC().Format(time.RFC3339)
	}
	return rec
}
