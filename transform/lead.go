package transform

import (
	"time"

	"github.com/paramvora-homewiz/formsync/models"
	"github.com/paramvora-homewiz/formsync/utils"
)

var leadAliases = map[string][]string{
	"email":                   {"lead_email", "email_address"},
	"status":                  {"lead_status"},
	"source":                  {"lead_source"},
	"interaction_count":       {"interactions"},
	"lead_score":              {"score"},
	"rooms_interested":        {"interested_rooms"},
	"selected_room_id":        {"selected_room"},
	"planned_move_in":         {"move_in_date"},
	"planned_move_out":        {"move_out_date"},
	"budget_min":              {"min_budget"},
	"budget_max":              {"max_budget"},
	"preferred_communication": {"preferred_contact"},
}

// Lead maps raw lead form input onto the canonical record.
func Lead(raw RawRecord) models.Lead {
	var rec models.Lead
	if len(raw) == 0 {
		return rec
	}
	r := resolver{raw: raw, aliases: leadAliases}

	rec.LeadID = r.str("lead_id")
	rec.Email = r.str("email")
	rec.Status = r.str("status")
	rec.Source = r.str("source")
	rec.InteractionCount = r.integer("interaction_count")
	rec.LeadScore = r.integer("lead_score")
	rec.RoomsInterested = r.list("rooms_interested")
	rec.SelectedRoomID = r.str("selected_room_id")
	rec.ShowingDates = r.list("showing_dates")
	rec.PlannedMoveIn = r.str("planned_move_in")
	rec.PlannedMoveOut = r.str("planned_move_out")
	rec.VisaStatus = r.str("visa_status")
	rec.BudgetMin = r.number("budget_min")
	rec.BudgetMax = r.number("budget_max")
	rec.PreferredCommunication = r.str("preferred_communication")
	rec.Notes = r.str("notes")
	rec.CreatedAt = r.str("created_at")
	rec.LastContacted = r.str("last_contacted")

	if rec.LeadID == "" {
		rec.LeadID = utils.GenerateID(models.LeadIDPrefix)
	}
	if rec.Status == "" {
		rec.Status = models.DefaultLeadStatus
	}
	if rec.InteractionCount == nil {
		rec.InteractionCount = utils.Ptr(0)
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = now().UTC().Format(time.RFC3339)
	}
	return rec
}
