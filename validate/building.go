package validate

import (
	"github.com/paramvora-homewiz/formsync/enums"
	"github.com/paramvora-homewiz/formsync/models"
)

// Building validates a canonical building record.
func Building(rec models.Building) Result {
	r := newResult()

	// required
	requireString(r, "building_id", rec.BuildingID)
	requireString(r, "building_name", rec.BuildingName)

	// enum
	checkEnum(r, "pet_friendly", rec.PetFriendly, enums.PetFriendly)
	checkEnum(r, "common_kitchen", rec.CommonKitchen, enums.CommonKitchen)
	checkEnum(r, "cleaning_common_spaces", rec.CleaningCommonSpaces, enums.CleaningSchedule)

	// cross-field
	checkIntMin(r, "floors", rec.Floors, 1, "building must have at least 1 floor")
	checkIntMin(r, "total_rooms", rec.TotalRooms, 0, "total rooms cannot be negative")
	checkIntMin(r, "total_bathrooms", rec.TotalBathrooms, 0, "total bathrooms cannot be negative")

	return r.finalize()
}
