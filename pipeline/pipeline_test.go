package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramvora-homewiz/formsync/transform"
)

// Documented end-to-end fixture: a complete tenant form passes the whole
// pipeline untouched.
func TestTenantEndToEnd(t *testing.T) {
	raw := transform.RawRecord{
		"tenant_name":        "John Doe",
		"tenant_email":       "john@example.com",
		"tenant_nationality": "American",
		"room_id":            "ROOM_001",
		"building_id":        "BLDG_001",
		"operator_id":        1,
		"booking_type":       "LEASE",
		"lease_start_date":   "2024-01-01",
		"lease_end_date":     "2024-12-31",
		"deposit_amount":     1000,
	}

	rec, res := Tenant(raw)
	assert.True(t, res.IsValid, "missing=%v errors=%v", res.MissingRequired, res.Errors)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.MissingRequired)

	assert.Regexp(t, `^TNT_[A-Z0-9]{8}$`, rec.TenantID)
	assert.Equal(t, "ACTIVE", rec.Status)
	assert.Equal(t, "CURRENT", rec.PaymentStatus)
	require.NotNil(t, rec.OperatorID)
	assert.Equal(t, 1, *rec.OperatorID)
}

// Documented end-to-end fixture: lead_id is auto-generated and status is
// auto-defaulted for any non-empty input, so only the email format error
// survives.
func TestLeadBadEmailEndToEnd(t *testing.T) {
	rec, res := Lead(transform.RawRecord{"email": "bad-email"})

	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, "email")
	assert.Empty(t, res.MissingRequired)
	assert.Regexp(t, `^LEAD_[A-Z0-9]{8}$`, rec.LeadID)
	assert.Equal(t, "EXPLORING", rec.Status)
}

func TestProcessDispatch(t *testing.T) {
	rec, res, err := Process(KindBuilding, transform.RawRecord{
		"building_id":   "BLD_SOMA",
		"building_name": "SoMA Commons",
	})
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.NotNil(t, rec)
}

func TestProcessUnknownKind(t *testing.T) {
	_, _, err := Process("dumpster", transform.RawRecord{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dumpster")
}

func TestValidatorIsSoleRejectionPoint(t *testing.T) {
	// Garbage everywhere: the transformer still produces a record and the
	// validator returns structured data rather than panicking or erroring.
	rec, res := Room(transform.RawRecord{
		"room_number":       []any{"weird"},
		"private_room_rent": "free",
		"bathroom_type":     "Golden",
	})
	assert.False(t, res.IsValid)
	assert.NotNil(t, rec)
	assert.Contains(t, res.MissingRequired, "private_room_rent")
	assert.Contains(t, res.Errors, "bathroom_type")
}
