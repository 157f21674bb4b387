package transform

import (
	"github.com/paramvora-homewiz/formsync/models"
	"github.com/paramvora-homewiz/formsync/utils"
)

var roomAliases = map[string][]string{
	"room_number":            {"number"},
	"floor_number":           {"floor"},
	"maximum_people_in_room": {"max_occupancy", "capacity"},
	"private_room_rent":      {"rent", "monthly_rent"},
	"shared_room_rent_2":     {"shared_rent"},
	"view":                   {"room_view"},
	"sq_footage":             {"square_footage", "size"},
	"sunlight_level":         {"sunlight"},
	"storage":                {"storage_option"},
	"status":                 {"room_status"},
	"booked_till":            {"booked_until"},
	"room_images":            {"images"},
}

// Room maps raw room form input onto the canonical record.
func Room(raw RawRecord) models.Room {
	var rec models.Room
	if len(raw) == 0 {
		return rec
	}
	r := resolver{raw: raw, aliases: roomAliases}

	rec.RoomID = r.str("room_id")
	rec.RoomNumber = r.str("room_number")
	rec.BuildingID = r.str("building_id")
	rec.FloorNumber = r.integer("floor_number")
	rec.MaximumPeopleInRoom = r.integer("maximum_people_in_room")
	rec.PrivateRoomRent = r.number("private_room_rent")
	rec.SharedRoomRent2 = r.number("shared_room_rent_2")
	rec.BathroomType = r.str("bathroom_type")
	rec.BedSize = r.str("bed_size")
	rec.BedType = r.str("bed_type")
	rec.View = r.str("view")
	rec.SqFootage = r.integer("sq_footage")
	rec.NoiseLevel = r.str("noise_level")
	rec.SunlightLevel = r.str("sunlight_level")
	rec.Furnished = r.boolean("furnished", false)
	rec.Storage = r.str("storage")
	rec.Status = r.str("status")
	rec.BookedFrom = r.str("booked_from")
	rec.BookedTill = r.str("booked_till")
	rec.RoomImages = r.list("room_images")

	if rec.RoomID == "" {
		rec.RoomID = utils.GenerateID(models.RoomIDPrefix)
	}
	if rec.Status == "" {
		rec.Status = models.DefaultRoomStatus
	}
	return rec
}
