package models

const (
	DefaultTenantStatus  = "ACTIVE"
	DefaultPaymentStatus = "CURRENT"
	DefaultAccountStatus = "ACTIVE"
)

// Tenant is the canonical record for a resident. It joins to Room, Building
// and Operator via their respective IDs. TenantNationality is free text;
// the closed nationality/visa vocabulary lives on VisaStatus.
type Tenant struct {
	TenantID                 string   `json:"tenant_id"`
	TenantName               string   `json:"tenant_name"`
	TenantEmail              string   `json:"tenant_email"`
	Phone                    string   `json:"phone,omitempty"`
	RoomID                   string   `json:"room_id"`
	RoomNumber               string   `json:"room_number,omitempty"`
	BuildingID               string   `json:"building_id"`
	OperatorID               *int     `json:"operator_id,omitempty"`
	LeaseStartDate           string   `json:"lease_start_date,omitempty"`
	LeaseEndDate             string   `json:"lease_end_date,omitempty"`
	BookingType              string   `json:"booking_type,omitempty"`
	TenantNationality        string   `json:"tenant_nationality,omitempty"`
	VisaStatus               string   `json:"visa_status,omitempty"`
	Status                   string   `json:"status,omitempty"`
	DepositAmount            *float64 `json:"deposit_amount,omitempty"`
	PaymentStatus            string   `json:"payment_status,omitempty"`
	CommunicationPreference  string   `json:"communication_preference,omitempty"`
	AccountStatus            string   `json:"account_status,omitempty"`
	EmergencyContactName     string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    string   `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation string   `json:"emergency_contact_relation,omitempty"`
	SpecialRequests          string   `json:"special_requests,omitempty"`
	CreatedAt                string   `json:"created_at,omitempty"`
}
