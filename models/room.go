package models

const DefaultRoomStatus = "AVAILABLE"

// Room is the canonical record for a rentable room within a building.
// RoomID joins to Building via BuildingID.
type Room struct {
	RoomID              string   `json:"room_id"`
	RoomNumber          string   `json:"room_number"`
	BuildingID          string   `json:"building_id"`
	FloorNumber         *int     `json:"floor_number,omitempty"`
	MaximumPeopleInRoom *int     `json:"maximum_people_in_room,omitempty"`
	PrivateRoomRent     *float64 `json:"private_room_rent,omitempty"`
	SharedRoomRent2     *float64 `json:"shared_room_rent_2,omitempty"`
	BathroomType        string   `json:"bathroom_type,omitempty"`
	BedSize             string   `json:"bed_size,omitempty"`
	BedType             string   `json:"bed_type,omitempty"`
	View                string   `json:"view,omitempty"`
	SqFootage           *int     `json:"sq_footage,omitempty"`
	NoiseLevel          string   `json:"noise_level,omitempty"`
	SunlightLevel       string   `json:"sunlight_level,omitempty"`
	Furnished           bool     `json:"furnished"`
	Storage             string   `json:"storage,omitempty"`
	Status              string   `json:"status,omitempty"`
	BookedFrom          string   `json:"booked_from,omitempty"`
	BookedTill          string   `json:"booked_till,omitempty"`
	RoomImages          string   `json:"room_images,omitempty"`
}
