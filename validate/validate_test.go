package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paramvora-homewiz/formsync/models"
	"github.com/paramvora-homewiz/formsync/transform"
	"github.com/paramvora-homewiz/formsync/utils"
)

// Required-field sets as declared per entity kind; an empty form must report
// exactly these.
func TestEmptyInputReportsDeclaredRequiredSet(t *testing.T) {
	cases := []struct {
		entity   string
		run      func() Result
		required []string
	}{
		{"operator", func() Result { return Operator(transform.Operator(transform.RawRecord{})) },
			[]string{"name", "email"}},
		{"building", func() Result { return Building(transform.Building(transform.RawRecord{})) },
			[]string{"building_id", "building_name"}},
		{"room", func() Result { return Room(transform.Room(transform.RawRecord{})) },
			[]string{"room_id", "room_number", "building_id", "private_room_rent"}},
		{"tenant", func() Result { return Tenant(transform.Tenant(transform.RawRecord{})) },
			[]string{"tenant_id", "tenant_name", "tenant_email", "room_id", "building_id"}},
		{"lead", func() Result { return Lead(transform.Lead(transform.RawRecord{})) },
			[]string{"lead_id", "email", "status"}},
	}
	for _, tc := range cases {
		t.Run(tc.entity, func(t *testing.T) {
			res := tc.run()
			assert.False(t, res.IsValid)
			assert.ElementsMatch(t, tc.required, res.MissingRequired)
			assert.Empty(t, res.Errors, "missing fields must not double-report as errors")
		})
	}
}

func TestRequiredOnlyInputIsValid(t *testing.T) {
	cases := []struct {
		entity string
		run    func() Result
	}{
		{"operator", func() Result {
			return Operator(transform.Operator(transform.RawRecord{
				"name": "Lisa Leasing", "email": "lisa@homewiz.com",
			}))
		}},
		{"building", func() Result {
			return Building(transform.Building(transform.RawRecord{
				"building_id": "BLD_MARKET", "building_name": "Market Street Residences",
			}))
		}},
		{"room", func() Result {
			return Room(transform.Room(transform.RawRecord{
				"room_id": "ROOM_001", "room_number": "101",
				"building_id": "BLD_MARKET", "private_room_rent": 2200,
			}))
		}},
		{"tenant", func() Result {
			return Tenant(transform.Tenant(transform.RawRecord{
				"tenant_name": "John Doe", "tenant_email": "john@example.com",
				"room_id": "ROOM_001", "building_id": "BLD_MARKET",
			}))
		}},
		{"lead", func() Result {
			return Lead(transform.Lead(transform.RawRecord{"email": "sarah@email.com"}))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.entity, func(t *testing.T) {
			res := tc.run()
			assert.True(t, res.IsValid, "unexpected failures: missing=%v errors=%v",
				res.MissingRequired, res.Errors)
		})
	}
}

func TestOperatorValidation(t *testing.T) {
	valid := models.Operator{
		Name:  "Lisa Leasing",
		Email: "lisa@homewiz.com",
	}

	t.Run("bad email", func(t *testing.T) {
		rec := valid
		rec.Email = "not-an-email"
		res := Operator(rec)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "email")
	})

	t.Run("out-of-vocabulary operator type is rejected, not coerced", func(t *testing.T) {
		rec := valid
		rec.OperatorType = "leasing_agent"
		res := Operator(rec)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "operator_type")
	})

	t.Run("phone digits after stripping formatting", func(t *testing.T) {
		rec := valid
		rec.Phone = "(415)555-0101"
		assert.True(t, Operator(rec).IsValid)

		rec.Phone = "555-0101"
		res := Operator(rec)
		assert.Contains(t, res.Errors, "phone")
	})

	t.Run("missing field short-circuits its format error", func(t *testing.T) {
		rec := valid
		rec.Email = "   "
		res := Operator(rec)
		assert.Contains(t, res.MissingRequired, "email")
		assert.NotContains(t, res.Errors, "email")
	})
}

func TestBuildingValidation(t *testing.T) {
	valid := models.Building{
		BuildingID:   "BLD_MARKET",
		BuildingName: "Market Street Residences",
	}

	t.Run("floors must be at least one", func(t *testing.T) {
		rec := valid
		rec.Floors = utils.Ptr(0)
		res := Building(rec)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "floors")

		rec.Floors = utils.Ptr(1)
		assert.True(t, Building(rec).IsValid)
	})

	t.Run("cleaning schedule vocabulary", func(t *testing.T) {
		rec := valid
		rec.CleaningCommonSpaces = "WEEKLY"
		assert.True(t, Building(rec).IsValid)

		rec.CleaningCommonSpaces = "SOMETIMES"
		assert.Contains(t, Building(rec).Errors, "cleaning_common_spaces")
	})
}

func TestRoomValidation(t *testing.T) {
	valid := models.Room{
		RoomID:          "ROOM_001",
		RoomNumber:      "101",
		BuildingID:      "BLD_MARKET",
		PrivateRoomRent: utils.Ptr(2200.0),
	}

	t.Run("negative rent", func(t *testing.T) {
		rec := valid
		rec.PrivateRoomRent = utils.Ptr(-1.0)
		res := Room(rec)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "private_room_rent")
	})

	t.Run("zero rent is acceptable", func(t *testing.T) {
		rec := valid
		rec.PrivateRoomRent = utils.Ptr(0.0)
		assert.True(t, Room(rec).IsValid)
	})

	t.Run("mixed-case vocabularies stay exact", func(t *testing.T) {
		rec := valid
		rec.BathroomType = "En-Suite"
		assert.True(t, Room(rec).IsValid)

		rec.BathroomType = "en-suite"
		assert.Contains(t, Room(rec).Errors, "bathroom_type")
	})

	t.Run("booking window ordering", func(t *testing.T) {
		rec := valid
		rec.BookedFrom = "2024-06-01"
		rec.BookedTill = "2024-06-01"
		res := Room(rec)
		assert.Contains(t, res.Errors, "booked_till")

		rec.BookedTill = "2024-06-02"
		assert.True(t, Room(rec).IsValid)
	})
}

func TestTenantValidation(t *testing.T) {
	valid := models.Tenant{
		TenantID:    "TNT_001",
		TenantName:  "John Doe",
		TenantEmail: "john@example.com",
		RoomID:      "ROOM_001",
		BuildingID:  "BLD_MARKET",
	}

	t.Run("lease end must be strictly after start", func(t *testing.T) {
		rec := valid
		rec.LeaseStartDate = "2024-01-01"
		rec.LeaseEndDate = "2024-01-01"
		res := Tenant(rec)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "lease_end_date")

		rec.LeaseEndDate = "2023-12-31"
		assert.Contains(t, Tenant(rec).Errors, "lease_end_date")

		rec.LeaseEndDate = "2024-01-02"
		assert.True(t, Tenant(rec).IsValid)
	})

	t.Run("calendar validity is enforced", func(t *testing.T) {
		rec := valid
		rec.LeaseStartDate = "2024-02-30"
		res := Tenant(rec)
		assert.Contains(t, res.Errors, "lease_start_date")

		rec.LeaseStartDate = "2024-2-1"
		assert.Contains(t, Tenant(rec).Errors, "lease_start_date")
	})

	t.Run("nationality is free text, visa status is not", func(t *testing.T) {
		rec := valid
		rec.TenantNationality = "American"
		assert.True(t, Tenant(rec).IsValid)

		rec.VisaStatus = "TOURIST"
		assert.Contains(t, Tenant(rec).Errors, "visa_status")

		rec.VisaStatus = "F1-VISA"
		assert.True(t, Tenant(rec).IsValid)
	})

	t.Run("negative deposit", func(t *testing.T) {
		rec := valid
		rec.DepositAmount = utils.Ptr(-100.0)
		assert.Contains(t, Tenant(rec).Errors, "deposit_amount")
	})
}

func TestLeadValidation(t *testing.T) {
	valid := models.Lead{
		LeadID: "LEAD_001",
		Email:  "sarah@email.com",
		Status: "EXPLORING",
	}

	t.Run("budget ordering errors on budget_max", func(t *testing.T) {
		rec := valid
		rec.BudgetMin = utils.Ptr(2500.0)
		rec.BudgetMax = utils.Ptr(1500.0)
		res := Lead(rec)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "budget_max")
		assert.NotContains(t, res.Errors, "budget_min")
	})

	t.Run("equal budgets are accepted", func(t *testing.T) {
		rec := valid
		rec.BudgetMin = utils.Ptr(2000.0)
		rec.BudgetMax = utils.Ptr(2000.0)
		assert.True(t, Lead(rec).IsValid)
	})

	t.Run("lead score bounds", func(t *testing.T) {
		rec := valid
		rec.LeadScore = utils.Ptr(100)
		assert.True(t, Lead(rec).IsValid)

		rec.LeadScore = utils.Ptr(101)
		assert.Contains(t, Lead(rec).Errors, "lead_score")

		rec.LeadScore = utils.Ptr(-1)
		assert.Contains(t, Lead(rec).Errors, "lead_score")
	})

	t.Run("negative interaction count", func(t *testing.T) {
		rec := valid
		rec.InteractionCount = utils.Ptr(-1)
		assert.Contains(t, Lead(rec).Errors, "interaction_count")
	})

	t.Run("status is enum-checked when present", func(t *testing.T) {
		rec := valid
		rec.Status = "BROWSING"
		assert.Contains(t, Lead(rec).Errors, "status")
	})
}

func TestBooleansAreNeverMissing(t *testing.T) {
	// false is a valid value, not an absence
	rec := models.Operator{Name: "x", Email: "x@y.com", Active: false}
	res := Operator(rec)
	assert.True(t, res.IsValid)
	assert.NotContains(t, res.MissingRequired, "active")
}
