package models

// Prefixes carried by generated entity identifiers. Operators are the
// exception: their IDs are backend-assigned integers and never generated
// on the form side.
const (
	BuildingIDPrefix = "BLDG"
	RoomIDPrefix     = "ROOM"
	TenantIDPrefix   = "TNT"
	LeadIDPrefix     = "LEAD"
)
