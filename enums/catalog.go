// Package enums holds the closed vocabularies shared by every entity form.
// The catalog is built once at package init and never mutated afterwards;
// matching is exact and case-sensitive so that a mismatch between a form and
// the backend vocabulary surfaces immediately instead of being papered over.
package enums

import (
	"sort"

	"github.com/pkg/errors"
)

// Catalog keys. Validators reference vocabularies by these names.
const (
	OperatorType             = "operator_type"
	NotificationPreference   = "notification_preference"
	RoomStatus               = "room_status"
	BathroomType             = "bathroom_type"
	BedSize                  = "bed_size"
	BedType                  = "bed_type"
	RoomView                 = "room_view"
	StorageOption            = "storage_option"
	NoiseLevel               = "noise_level"
	SunlightLevel            = "sunlight_level"
	PetFriendly              = "pet_friendly"
	CommonKitchen            = "common_kitchen"
	CleaningSchedule         = "cleaning_schedule"
	TenantStatus             = "tenant_status"
	BookingType              = "booking_type"
	VisaStatus               = "visa_status"
	PaymentStatus            = "payment_status"
	CommunicationPreference  = "communication_preference"
	AccountStatus            = "account_status"
	EmergencyContactRelation = "emergency_contact_relation"
	LeadStatus               = "lead_status"
	LeadSource               = "lead_source"
	PreferredCommunication   = "preferred_communication"
)

var catalog = map[string][]string{
	OperatorType:             {"LEASING_AGENT", "MAINTENANCE", "BUILDING_MANAGER", "ADMIN"},
	NotificationPreference:   {"EMAIL", "SMS", "BOTH", "NONE"},
	RoomStatus:               {"AVAILABLE", "OCCUPIED", "MAINTENANCE", "RESERVED"},
	BathroomType:             {"Private", "En-Suite", "Shared"},
	BedSize:                  {"Twin", "Full", "Queen", "King"},
	BedType:                  {"Single", "Platform", "Bunk"},
	RoomView:                 {"Street", "City", "Bay", "Garden", "Courtyard"},
	StorageOption:            {"NONE", "UNDER_BED", "CLOSET", "BOTH"},
	NoiseLevel:               {"QUIET", "MODERATE", "LIVELY"},
	SunlightLevel:            {"LOW", "MODERATE", "BRIGHT"},
	PetFriendly:              {"NO_PETS", "CATS_ONLY", "SMALL_PETS", "ALL_PETS"},
	CommonKitchen:            {"NONE", "BASIC", "FULL"},
	CleaningSchedule:         {"DAILY", "WEEKLY", "BIWEEKLY", "MONTHLY"},
	TenantStatus:             {"ACTIVE", "PENDING", "INACTIVE", "TERMINATED"},
	BookingType:              {"LEASE", "SHORT_TERM", "MONTH_TO_MONTH", "CORPORATE"},
	VisaStatus:               {"US-CITIZEN", "GREEN-CARD", "F1-VISA", "H1B-VISA", "J1-VISA", "OTHER"},
	PaymentStatus:            {"CURRENT", "LATE", "PENDING", "PARTIAL"},
	CommunicationPreference:  {"EMAIL", "SMS", "PHONE"},
	AccountStatus:            {"ACTIVE", "INACTIVE", "SUSPENDED"},
	EmergencyContactRelation: {"PARENT", "SIBLING", "SPOUSE", "FRIEND", "GUARDIAN", "OTHER"},
	LeadStatus:               {"EXPLORING", "INTERESTED", "SHOWING_SCHEDULED", "APPLICATION_SUBMITTED", "APPROVED", "REJECTED", "CONVERTED", "LOST"},
	LeadSource:               {"WEBSITE", "REFERRAL", "ADVERTISEMENT", "SOCIAL_MEDIA", "WALK_IN", "OTHER"},
	PreferredCommunication:   {"EMAIL", "SMS", "PHONE", "ANY"},
}

// members indexes catalog for O(1) lookups. Built once at init.
var members map[string]map[string]struct{}

func init() {
	members = make(map[string]map[string]struct{}, len(catalog))
	for name, values := range catalog {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		members[name] = set
	}
}

// IsMember reports whether value belongs to the named vocabulary. Unknown
// vocabulary names always report false.
func IsMember(name, value string) bool {
	set, ok := members[name]
	if !ok {
		return false
	}
	_, ok = set[value]
	return ok
}

// Values returns a copy of the named vocabulary in declaration order.
func Values(name string) ([]string, error) {
	values, ok := catalog[name]
	if !ok {
		return nil, errors.Errorf("unknown enumeration %q", name)
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}

// Names returns every registered enumeration name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
