package domain

// Reward is a catalogue item redeemable for points.
type Reward struct {
	ID             string `json:"id" yaml:"id" bson:"id"`
	Name           string `json:"name" yaml:"name" bson:"name"`
	PointsRequired int    `json:"points_required" yaml:"points_required" bson:"points_required"`
	Icon           string `json:"icon" yaml:"icon" bson:"icon"`
}

// Wallet tracks a donor's spendable points and what they redeemed.
type Wallet struct {
	Balance  int
	Redeemed []Reward
}

// CanAfford reports whether the balance covers r.
func (w Wallet) CanAfford(r Reward) bool { return w.Balance >= r.PointsRequired }

// Redeem deducts the reward cost and records it. The wallet is untouched on failure.
func (w *Wallet) Redeem(r Reward) error {
	if !w.CanAfford(r) {
		return ErrInsufficientPoints
	}
	w.Balance -= r.PointsRequired
	w.Redeemed = append(w.Redeemed, r)
	return nil
}

// FindReward looks a reward up by id.
func FindReward(catalog []Reward, id string) (Reward, error) {
	for _, r := range catalog {
		if r.ID == id {
			return r, nil
		}
	}
	return Reward{}, ErrRewardNotFound
}
