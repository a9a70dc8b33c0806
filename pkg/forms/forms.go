package forms

// Explicit request schemas for the account flows. Each form knows how
// to validate itself into a field -> messages map, mirroring the
// structure the storefront JavaScript expects under "errors".

// RegistrationForm is the POST /register payload.
type RegistrationForm struct {
	FirstName       string `json:"firstName" validate:"required,max=64"`
	LastName        string `json:"lastName" validate:"required,max=64"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Phone           string `json:"phone" validate:"required,max=20"`
	Password        string `json:"password" validate:"required,pwd"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Newsletter      bool   `json:"newsletter"`
	AgreeTerms      bool   `json:"agreeTerms" validate:"eq=true"`
}

func (f *RegistrationForm) Validate() Errors {
	return validateStruct(f)
}

// LoginForm is the POST /login payload. Field-level checks are kept to
// presence only; anything else surfaces as the generic credential error
// so responses never reveal which part was wrong.
type LoginForm struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// ProfileForm is the profile-edit payload: registration shape minus
// credentials and terms. Bound from a regular HTML form post.
type ProfileForm struct {
	FirstName  string `json:"firstName" form:"firstName" validate:"required,max=64"`
	LastName   string `json:"lastName" form:"lastName" validate:"required,max=64"`
	Phone      string `json:"phone" form:"phone" validate:"required,max=20"`
	Newsletter bool   `json:"newsletter" form:"newsletter"`
}

func (f *ProfileForm) Validate() Errors {
	return validateStruct(f)
}
