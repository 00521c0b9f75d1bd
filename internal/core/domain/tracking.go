package domain

import "strings"

// DonationStage is a step in a donation's journey from appointment to transfusion.
type DonationStage string

const (
	StageScheduled DonationStage = "Scheduled"
	StageCollected DonationStage = "Collected"
	StageTested    DonationStage = "Tested"
	StageProcessed DonationStage = "Processed"
	StageAvailable DonationStage = "Available"
	StageUsed      DonationStage = "Used"
)

// Stages is the fixed order of the progress indicator.
var Stages = []DonationStage{StageScheduled, StageCollected, StageTested, StageProcessed, StageAvailable, StageUsed}

var stageProgress = map[DonationStage]int{
	StageScheduled: 16,
	StageCollected: 33,
	StageTested:    50,
	StageProcessed: 66,
	StageAvailable: 83,
	StageUsed:      100,
}

// stageStep is the nominal width of one stage on the progress bar.
const stageStep = 16.66

// Progress is the bar fill percentage for the stage; unknown stages report 0.
func (s DonationStage) Progress() int { return stageProgress[s] }

// TrackedDonation is a donation as seen by the tracking page.
type TrackedDonation struct {
	ID            string        `json:"id" yaml:"id" bson:"id"`
	DonorName     string        `json:"donor_name" yaml:"donor_name" bson:"donor_name"`
	DonationDate  string        `json:"donation_date" yaml:"donation_date" bson:"donation_date"`
	Location      string        `json:"location" yaml:"location" bson:"location"`
	BloodType     string        `json:"blood_type" yaml:"blood_type" bson:"blood_type"`
	Status        DonationStage `json:"status" yaml:"status" bson:"status"`
	TestResults   string        `json:"test_results" yaml:"test_results" bson:"test_results"`
	ExpiryDate    string        `json:"expiry_date" yaml:"expiry_date" bson:"expiry_date"`
	RecipientInfo string        `json:"recipient_info,omitempty" yaml:"recipient_info,omitempty" bson:"recipient_info,omitempty"`
}

// StageView is one row of the rendered timeline.
type StageView struct {
	Stage     DonationStage `json:"stage"`
	Completed bool          `json:"completed"`
	Current   bool          `json:"current"`
}

// Timeline marks each stage as completed or current relative to the donation's status.
func (d TrackedDonation) Timeline() []StageView {
	progress := float64(d.Status.Progress())
	out := make([]StageView, len(Stages))
	for i, s := range Stages {
		out[i] = StageView{
			Stage:     s,
			Completed: progress > float64(i)*stageStep,
			Current:   d.Status == s,
		}
	}
	return out
}

// TestsPassed reports whether the lab result text records a pass.
func (d TrackedDonation) TestsPassed() bool { return strings.Contains(d.TestResults, "passed") }

// FindDonation performs an exact, case-insensitive id lookup.
func FindDonation(donations []TrackedDonation, id string) (TrackedDonation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TrackedDonation{}, ErrEmptyDonationID
	}
	for _, d := range donations {
		if strings.EqualFold(d.ID, id) {
			return d, nil
		}
	}
	return TrackedDonation{}, ErrDonationNotFound
}
