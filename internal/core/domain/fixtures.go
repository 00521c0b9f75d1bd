package domain

// Fixtures is the seed data every session workspace starts from.
type Fixtures struct {
	Slots        []Slot            `yaml:"slots"`
	History      []DonationRecord  `yaml:"history"`
	Rewards      []Reward          `yaml:"rewards"`
	RewardPoints int               `yaml:"reward_points"`
	Inventory    []BloodUnit       `yaml:"inventory"`
	Donations    []TrackedDonation `yaml:"donations"`
	Users        []User            `yaml:"users"`
	DonorProfile DonorProfile      `yaml:"donor_profile"`
}

// Clone deep-copies the mutable collections so sessions never share state.
func (f Fixtures) Clone() Fixtures {
	c := f
	c.Slots = append([]Slot(nil), f.Slots...)
	c.History = append([]DonationRecord(nil), f.History...)
	c.Rewards = append([]Reward(nil), f.Rewards...)
	c.Inventory = append([]BloodUnit(nil), f.Inventory...)
	c.Donations = append([]TrackedDonation(nil), f.Donations...)
	c.Users = append([]User(nil), f.Users...)
	return c
}
