package domain

// DonationRecord is one entry of a donor's history.
type DonationRecord struct {
	ID           string `json:"id" yaml:"id" bson:"id"`
	Date         string `json:"date" yaml:"date" bson:"date"`
	Location     string `json:"location" yaml:"location" bson:"location"`
	PointsEarned int    `json:"points_earned" yaml:"points_earned" bson:"points_earned"`
	Status       string `json:"status" yaml:"status" bson:"status"`
}

// Badge is a donor recognition tier.
type Badge struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Points int    `json:"points"`
}

// NewDonorBadge is awarded below the first threshold.
var NewDonorBadge = Badge{Name: "New Donor", Icon: "🩸"}

// BadgeLevels is ordered by ascending threshold.
var BadgeLevels = []Badge{
	{Points: 50, Name: "Bronze Donor", Icon: "🥉"},
	{Points: 150, Name: "Silver Donor", Icon: "🥈"},
	{Points: 250, Name: "Gold Donor", Icon: "🥇"},
	{Points: 500, Name: "Platinum Donor", Icon: "💎"},
}

// BadgeFor returns the highest tier whose threshold points reaches.
func BadgeFor(points int) Badge {
	for i := len(BadgeLevels) - 1; i >= 0; i-- {
		if points >= BadgeLevels[i].Points {
			return BadgeLevels[i]
		}
	}
	return NewDonorBadge
}

// TotalPoints sums the points earned over history.
func TotalPoints(history []DonationRecord) int {
	total := 0
	for _, d := range history {
		total += d.PointsEarned
	}
	return total
}

// DonorProfile feeds the donor dashboard stat cards.
type DonorProfile struct {
	Name             string `json:"name" yaml:"name" bson:"name"`
	TotalDonations   int    `json:"total_donations" yaml:"total_donations" bson:"total_donations"`
	RewardPoints     int    `json:"reward_points" yaml:"reward_points" bson:"reward_points"`
	NextDonationDate string `json:"next_donation_date" yaml:"next_donation_date" bson:"next_donation_date"`
	BloodType        string `json:"blood_type" yaml:"blood_type" bson:"blood_type"`
}
