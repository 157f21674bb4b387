package transform

import (
	"time"

	"github.com/paramvora-homewiz/formsync/models"
	"github.com/paramvora-homewiz/formsync/utils"
)

var buildingAliases = map[string][]string{
	"building_id":            {"bldg_id"},
	"building_name":          {"name"},
	"full_address":           {"address"},
	"area":                   {"neighborhood", "district"},
	"zip":                    {"zip_code", "postal_code"},
	"floors":                 {"total_floors", "floor_count"},
	"total_rooms":            {"room_count"},
	"total_bathrooms":        {"bathroom_count"},
	"wifi_included":          {"wifi"},
	"laundry_onsite":         {"laundry"},
	"pet_friendly":           {"pets"},
	"cleaning_common_spaces": {"cleaning_schedule"},
	"building_images":        {"images"},
}

// Building maps raw building form input onto the canonical record. A full
// address is composed from the discrete parts only when the form did not
// supply one directly.
func Building(raw RawRecord) models.Building {
	var rec models.Building
	if len(raw) == 0 {
		return rec
	}
	r := resolver{raw: raw, aliases: buildingAliases}

	rec.BuildingID = r.str("building_id")
	rec.BuildingName = r.str("building_name")
	rec.FullAddress = r.str("full_address")
	rec.OperatorID = r.integer("operator_id")
	rec.Street = r.str("street")
	rec.Area = r.str("area")
	rec.City = r.str("city")
	rec.State = r.str("state")
	rec.Zip = r.str("zip")
	rec.Floors = r.integer("floors")
	rec.TotalRooms = r.integer("total_rooms")
	rec.TotalBathrooms = r.integer("total_bathrooms")
	rec.YearBuilt = r.integer("year_built")
	rec.WifiIncluded = r.boolean("wifi_included", true)
	rec.LaundryOnsite = r.boolean("laundry_onsite", true)
	rec.PetFriendly = r.str("pet_friendly")
	rec.CommonKitchen = r.str("common_kitchen")
	rec.CleaningCommonSpaces = r.str("cleaning_common_spaces")
	rec.BuildingImages = r.list("building_images")
	rec.CreatedAt = r.str("created_at")

	if rec.FullAddress == "" {
		rec.FullAddress = composeAddress(rec.Street, rec.Area, rec.City, rec.State, rec.Zip)
	}
	if rec.BuildingID == "" {
		rec.BuildingID = utils.GenerateID(models.BuildingIDPrefix)
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = now().UTC().Format(time.RFC3339)
	}
	return rec
}
