package models

const DefaultLeadStatus = "EXPLORING"

// Lead is the canonical record for a prospective tenant. RoomsInterested and
// ShowingDates are JSON-encoded string lists (flat text on the backend).
type Lead struct {
	LeadID                 string   `json:"lead_id"`
	Email                  string   `json:"email"`
	Status                 string   `json:"status"`
	Source                 string   `json:"source,omitempty"`
	InteractionCount       *int     `json:"interaction_count,omitempty"`
	LeadScore              *int     `json:"lead_score,omitempty"`
	RoomsInterested        string   `json:"rooms_interested,omitempty"`
	SelectedRoomID         string   `json:"selected_room_id,omitempty"`
	ShowingDates           string   `json:"showing_dates,omitempty"`
	PlannedMoveIn          string   `json:"planned_move_in,omitempty"`
	PlannedMoveOut         string   `json:"planned_move_out,omitempty"`
	VisaStatus             string   `json:"visa_status,omitempty"`
	BudgetMin              *float64 `json:"budget_min,omitempty"`
	BudgetMax              *float64 `json:"budget_max,omitempty"`
	PreferredCommunication string   `json:"preferred_communication,omitempty"`
	Notes                  string   `json:"notes,omitempty"`
	CreatedAt              string   `json:"created_at,omitempty"`
	LastContacted          string   `json:"last_contacted,omitempty"`
}
