package domain

// Slot is a bookable donation appointment.
type Slot struct {
	Date     string `json:"date" yaml:"date" bson:"date"`
	Time     string `json:"time" yaml:"time" bson:"time"`
	Location string `json:"location" yaml:"location" bson:"location"`
}

// ScheduleState is the schedule page's selection. Selected is -1 when nothing is chosen.
type ScheduleState struct {
	Selected  int
	Confirmed bool
}

// NewScheduleState starts with no selection.
func NewScheduleState() ScheduleState { return ScheduleState{Selected: -1} }

// Select chooses slot i and drops any earlier confirmation.
func (s *ScheduleState) Select(slots []Slot, i int) error {
	if i < 0 || i >= len(slots) {
		return ErrInvalidSlot
	}
	s.Selected = i
	s.Confirmed = false
	return nil
}

// Confirm books the selected slot.
func (s *ScheduleState) Confirm(slots []Slot) (Slot, error) {
	if s.Selected < 0 || s.Selected >= len(slots) {
		return Slot{}, ErrNoSlotSelected
	}
	s.Confirmed = true
	return slots[s.Selected], nil
}

// Reset clears selection and confirmation ("schedule another").
func (s *ScheduleState) Reset() { *s = NewScheduleState() }

// SelectedSlot returns the current selection, if any.
func (s ScheduleState) SelectedSlot(slots []Slot) (Slot, bool) {
	if s.Selected < 0 || s.Selected >= len(slots) {
		return Slot{}, false
	}
	return slots[s.Selected], true
}
