package domain

// UserStatus is an account's administrative state.
type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserInactive  UserStatus = "Inactive"
	UserSuspended UserStatus = "Suspended"
)

// User is a directory entry managed by admins.
type User struct {
	ID            string     `json:"id" yaml:"id" bson:"id"`
	Name          string     `json:"name" yaml:"name" bson:"name"`
	Email         string     `json:"email" yaml:"email" bson:"email"`
	Role          Role       `json:"role" yaml:"role" bson:"role"`
	Status        UserStatus `json:"status" yaml:"status" bson:"status"`
	JoinDate      string     `json:"join_date" yaml:"join_date" bson:"join_date"`
	LastLogin     string     `json:"last_login" yaml:"last_login" bson:"last_login"`
	BloodType     string     `json:"blood_type,omitempty" yaml:"blood_type,omitempty" bson:"blood_type,omitempty"`
	DonationCount int        `json:"donation_count,omitempty" yaml:"donation_count,omitempty" bson:"donation_count,omitempty"`
	HospitalName  string     `json:"hospital_name,omitempty" yaml:"hospital_name,omitempty" bson:"hospital_name,omitempty"`
}

// UserEdit carries the editable fields of a user.
type UserEdit struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	BloodType    string
	HospitalName string
}

// Apply merges the edit into u. Role-specific fields are only taken when the
// (new) role shows them; otherwise the previous values are kept.
func (e UserEdit) Apply(u User) User {
	u.Name = e.Name
	u.Email = e.Email
	u.Role = e.Role
	if e.Role.HasBloodType() {
		u.BloodType = e.BloodType
	}
	if e.Role == RoleHospital {
		u.HospitalName = e.HospitalName
	}
	return u
}

// ReplaceUser swaps the entry with the edit's id in place.
func ReplaceUser(users []User, e UserEdit) (User, error) {
	for i := range users {
		if users[i].ID == e.ID {
			users[i] = e.Apply(users[i])
			return users[i], nil
		}
	}
	return User{}, ErrUserNotFound
}

// FindUser looks a user up by id.
func FindUser(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
