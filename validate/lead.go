package validate

import (
	"github.com/paramvora-homewiz/formsync/enums"
	"github.com/paramvora-homewiz/formsync/models"
)

// Lead validates a canonical lead record.
func Lead(rec models.Lead) Result {
	r := newResult()

	// required
	requireString(r, "lead_id", rec.LeadID)
	requireString(r, "email", rec.Email)
	requireString(r, "status", rec.Status)

	// enum
	checkEnum(r, "status", rec.Status, enums.LeadStatus)
	checkEnum(r, "source", rec.Source, enums.LeadSource)
	checkEnum(r, "visa_status", rec.VisaStatus, enums.VisaStatus)
	checkEnum(r, "preferred_communication", rec.PreferredCommunication, enums.PreferredCommunication)

	// format
	checkEmail(r, "email", rec.Email)
	checkDate(r, "planned_move_in", rec.PlannedMoveIn)
	checkDate(r, "planned_move_out", rec.PlannedMoveOut)
	checkDate(r, "last_contacted", rec.LastContacted)

	// cross-field
	if rec.BudgetMin != nil && rec.BudgetMax != nil && *rec.BudgetMax < *rec.BudgetMin {
		r.addError("budget_max", "maximum budget cannot be below minimum budget")
	}
	checkFloatMin(r, "budget_min", rec.BudgetMin, 0, "budget cannot be negative")
	checkIntRange(r, "lead_score", rec.LeadScore, 0, 100, "lead score must be between 0 and 100")
	checkIntMin(r, "interaction_count", rec.InteractionCount, 0, "interaction count cannot be negative")
	if rec.PlannedMoveIn != "" && rec.PlannedMoveOut != "" {
		checkDateOrder(r, "planned_move_out", rec.PlannedMoveIn, rec.PlannedMoveOut,
			"planned move-out must be after planned move-in")
	}

	return r.finalize()
}
