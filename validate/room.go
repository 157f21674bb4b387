package validate

import (
	"github.com/paramvora-homewiz/formsync/enums"
	"github.com/paramvora-homewiz/formsync/models"
)

// Room validates a canonical room record.
func Room(rec models.Room) Result {
	r := newResult()

	// required
	requireString(r, "room_id", rec.RoomID)
	requireString(r, "room_number", rec.RoomNumber)
	requireString(r, "building_id", rec.BuildingID)
	requireNumber(r, "private_room_rent", rec.PrivateRoomRent)

	// enum
	checkEnum(r, "bathroom_type", rec.BathroomType, enums.BathroomType)
	checkEnum(r, "bed_size", rec.BedSize, enums.BedSize)
	checkEnum(r, "bed_type", rec.BedType, enums.BedType)
	checkEnum(r, "view", rec.View, enums.RoomView)
	checkEnum(r, "noise_level", rec.NoiseLevel, enums.NoiseLevel)
	checkEnum(r, "sunlight_level", rec.SunlightLevel, enums.SunlightLevel)
	checkEnum(r, "storage", rec.Storage, enums.StorageOption)
	checkEnum(r, "status", rec.Status, enums.RoomStatus)

	// format
	checkDate(r, "booked_from", rec.BookedFrom)
	checkDate(r, "booked_till", rec.BookedTill)

	// cross-field
	checkFloatMin(r, "private_room_rent", rec.PrivateRoomRent, 0, "rent cannot be negative")
	checkFloatMin(r, "shared_room_rent_2", rec.SharedRoomRent2, 0, "rent cannot be negative")
	checkIntMin(r, "maximum_people_in_room", rec.MaximumPeopleInRoom, 1, "room must hold at least 1 person")
	checkIntMin(r, "sq_footage", rec.SqFootage, 0, "square footage cannot be negative")
	if rec.BookedFrom != "" && rec.BookedTill != "" {
		checkDateOrder(r, "booked_till", rec.BookedFrom, rec.BookedTill, "booked till must be after booked from")
	}

	return r.finalize()
}
