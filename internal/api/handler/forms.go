package handler

import (
	"strconv"
	"strings"

	"github.com/bloodchain/portal/internal/core/domain"
)

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role"     validate:"required,oneof=Donor Recipient Hospital Admin"`
}

type registerForm struct {
	Name            string `form:"name"             validate:"required"`
	Email           string `form:"email"            validate:"required,email"`
	Password        string `form:"password"         validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `form:"role"             validate:"required,oneof=Donor Recipient Hospital Admin"`
	BloodGroup      string `form:"blood_group"      validate:"required_if=Role Donor,required_if=Role Recipient"`
	Hospital        string `form:"hospital"         validate:"required_if=Role Hospital"`
}

type bloodRequestForm struct {
	PatientName      string `form:"patient_name"`
	BloodType        string `form:"blood_type"`
	UrgencyLevel     string `form:"urgency_level"`
	UnitsNeeded      string `form:"units_needed"`
	HospitalName     string `form:"hospital_name"`
	ContactNumber    string `form:"contact_number"`
	RequiredBy       string `form:"required_by"`
	MedicalCondition string `form:"medical_condition"`
	DoctorName       string `form:"doctor_name"`
	AdditionalNotes  string `form:"additional_notes"`
}

// toDomain keeps the typed fields even when the unit count is not a number;
// the zero count then fails validation with the rest of the draft stored.
func (f bloodRequestForm) toDomain() domain.BloodRequest {
	units, _ := strconv.Atoi(strings.TrimSpace(f.UnitsNeeded))
	return domain.BloodRequest{
		PatientName:      f.PatientName,
		BloodType:        f.BloodType,
		UrgencyLevel:     f.UrgencyLevel,
		UnitsNeeded:      units,
		HospitalName:     f.HospitalName,
		ContactNumber:    f.ContactNumber,
		RequiredBy:       f.RequiredBy,
		MedicalCondition: f.MedicalCondition,
		DoctorName:       f.DoctorName,
		AdditionalNotes:  f.AdditionalNotes,
	}
}

// inventoryUpdateForm is checked by domain.ApplyUpdate rather than tags.
// The filter fields echo the list filters so the redirect can restore them.
type inventoryUpdateForm struct {
	UnitID string `form:"unit_id"`
	Action string `form:"action"`
	Reason string `form:"reason"`

	BloodType string `form:"blood_type"`
	Status    string `form:"status"`
	Search    string `form:"q"`
}

func (f inventoryUpdateForm) toDomain() domain.InventoryUpdate {
	return domain.InventoryUpdate{UnitID: f.UnitID, Action: domain.InventoryAction(f.Action), Reason: f.Reason}
}

func (f inventoryUpdateForm) filter() domain.InventoryFilter {
	return domain.InventoryFilter{BloodType: f.BloodType, Status: f.Status, Search: f.Search}
}

type userEditForm struct {
	ID           string `form:"id"            validate:"required"`
	Name         string `form:"name"          validate:"required"`
	Email        string `form:"email"         validate:"required,email"`
	Role         string `form:"role"          validate:"required,oneof=Donor Recipient Hospital Admin"`
	BloodType    string `form:"blood_type"`
	HospitalName string `form:"hospital_name"`
}

func (f userEditForm) toDomain() domain.UserEdit {
	return domain.UserEdit{
		ID:           f.ID,
		Name:         f.Name,
		Email:        f.Email,
		Role:         domain.Role(f.Role),
		BloodType:    f.BloodType,
		HospitalName: f.HospitalName,
	}
}
