package models

// Building is the canonical record for one property building. Collection
// fields (BuildingImages) are carried as a single JSON-encoded string because
// the backend persistence column is flat text.
type Building struct {
	BuildingID           string `json:"building_id"`
	BuildingName         string `json:"building_name"`
	FullAddress          string `json:"full_address,omitempty"`
	OperatorID           *int   `json:"operator_id,omitempty"`
	Street               string `json:"street,omitempty"`
	Area                 string `json:"area,omitempty"`
	City                 string `json:"city,omitempty"`
	State                string `json:"state,omitempty"`
	Zip                  string `json:"zip,omitempty"`
	Floors               *int   `json:"floors,omitempty"`
	TotalRooms           *int   `json:"total_rooms,omitempty"`
	TotalBathrooms       *int   `json:"total_bathrooms,omitempty"`
	YearBuilt            *int   `json:"year_built,omitempty"`
	WifiIncluded         bool   `json:"wifi_included"`
	LaundryOnsite        bool   `json:"laundry_onsite"`
	PetFriendly          string `json:"pet_friendly,omitempty"`
	CommonKitchen        string `json:"common_kitchen,omitempty"`
	CleaningCommonSpaces string `json:"cleaning_common_spaces,omitempty"`
	BuildingImages       string `json:"building_images,omitempty"`
	CreatedAt            string `json:"created_at,omitempty"`
}
