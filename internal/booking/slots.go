package booking

// Slot is a coarse named time window. Venues host up to one event per slot
// per day; the three slots do not overlap in wall-clock time.
type Slot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
}

const (
	SlotMorning = "Morning"
	SlotDay     = "Day"
	SlotEvening = "Evening"
)

var TimeSlots = []Slot{
	{ID: SlotMorning, Label: "Morning (7am - 11am)", StartTime: "07:00"},
	{ID: SlotDay, Label: "Day (12pm - 5pm)", StartTime: "12:00"},
	{ID: SlotEvening, Label: "Evening/Night (6pm - 2am)", StartTime: "18:00"},
}

// ValidSlot reports whether id names a known slot. The empty string is
// allowed everywhere a slot is optional.
func ValidSlot(id string) bool {
	if id == "" {
		return true
	}
	for _, s := range TimeSlots {
		if s.ID == id {
			return true
		}
	}
	return false
}
