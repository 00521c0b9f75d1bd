package domain

import (
	"fmt"
	"strings"
	"time"
)

// BloodTypes lists the ABO/Rh groups in display order.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Option is a value/label pair for select inputs.
type Option struct {
	Value string
	Label string
}

// Urgency levels offered by the request form, with their response windows.
var UrgencyLevels = []Option{
	{Value: "Critical", Label: "Critical (Within 24 hours)"},
	{Value: "Urgent", Label: "Urgent (Within 3 days)"},
	{Value: "Moderate", Label: "Moderate (Within 1 week)"},
	{Value: "Low", Label: "Low (Within 2 weeks)"},
}

// Units a single request may ask for.
const (
	MinUnits = 1
	MaxUnits = 10
)

// BloodRequest is a recipient's request for units.
type BloodRequest struct {
	PatientName      string
	BloodType        string
	UrgencyLevel     string
	UnitsNeeded      int
	HospitalName     string
	ContactNumber    string
	RequiredBy       string
	MedicalCondition string
	DoctorName       string
	AdditionalNotes  string
}

// NewBloodRequest is an empty draft asking for one unit.
func NewBloodRequest() BloodRequest { return BloodRequest{UnitsNeeded: 1} }

// Validate checks the required fields.
func (r BloodRequest) Validate() error {
	required := []string{r.PatientName, r.BloodType, r.UrgencyLevel, r.HospitalName, r.ContactNumber, r.RequiredBy}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	if r.UnitsNeeded < MinUnits || r.UnitsNeeded > MaxUnits {
		return ErrInvalidUnits
	}
	return nil
}

// RequestID derives a request identifier from the trailing six digits of the
// Unix millisecond timestamp.
func RequestID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "BR" + ms
}

// RequestState is the request page's draft and outcome.
type RequestState struct {
	Draft     BloodRequest
	Submitted bool
	RequestID string
}

// NewRequestState starts with an empty draft.
func NewRequestState() RequestState { return RequestState{Draft: NewBloodRequest()} }
