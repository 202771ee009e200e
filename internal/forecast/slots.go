package forecast

import "time"

// Slot is one semantic time-of-day window, defined by a label and the
// viewer-local hours that represent it.
type Slot struct {
	Name  string `json:"name"`
	Hours []int  `json:"-"`
}

// Slots is the fixed time-of-day catalog. The hour sets overlap on purpose
// (12 sits in Morning and Afternoon, 21 in Evening and Night) so boundary
// samples can satisfy either slot.
var Slots = []Slot{
	{Name: "Morning", Hours: []int{6, 9, 12}},
	{Name: "Afternoon", Hours: []int{12, 15, 18}},
	{Name: "Evening", Hours: []int{18, 21}},
	{Name: "Night", Hours: []int{0, 3, 21, 23}},
}

// MatchSlot picks the sample whose local hour is closest to any of the
// slot's hours, scanning the full sample × hour cross-product. The first
// pair reaching the minimal distance wins ties, which keeps repeated calls
// deterministic. Returns nil when items is empty or the slot has no hours.
func MatchSlot(items []Sample, slot Slot, loc *time.Location) *Sample {
	if len(items) == 0 || len(slot.Hours) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	best := -1
	bestDist := 0
	for i, s := range items {
		hour := time.Unix(s.Timestamp, 0).In(loc).Hour()
		for _, target := range slot.Hours {
			dist := hour - target
			if dist < 0 {
				dist = -dist
			}
			if best == -1 || dist < bestDist {
				best = i
				bestDist = dist
			}
		}
	}

	match := items[best]
	return &match
}
