package requests

type CreatePatient struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}
