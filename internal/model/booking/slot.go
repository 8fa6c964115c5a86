package booking

import "github.com/samber/lo"

// TimeSlot is an appointment start time offered by the counseling center.
type TimeSlot struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SeedSlots returns the daily availability grid.
func SeedSlots() []TimeSlot {
	return []TimeSlot{
		{ID: "1", Time: "09:00 AM", Available: true},
		{ID: "2", Time: "10:00 AM", Available: false},
		{ID: "3", Time: "11:00 AM", Available: true},
		{ID: "4", Time: "02:00 PM", Available: true},
		{ID: "5", Time: "03:00 PM", Available: true},
		{ID: "6", Time: "04:00 PM", Available: false},
	}
}

// SlotCatalog is a read-only list of time slots.
type SlotCatalog struct {
	slots []TimeSlot
}

// NewSlotCatalog copies slots into a catalog.
func NewSlotCatalog(slots []TimeSlot) *SlotCatalog {
	return &SlotCatalog{slots: append([]TimeSlot(nil), slots...)}
}

// List returns the slots in catalog order.
func (c *SlotCatalog) List() []TimeSlot {
	return append([]TimeSlot(nil), c.slots...)
}

// Resolve finds a slot by identifier or by its time label ("11:00 AM").
func (c *SlotCatalog) Resolve(ref string) (TimeSlot, bool) {
	return lo.Find(c.slots, func(slot TimeSlot) bool {
		return slot.ID == ref || slot.Time == ref
	})
}
