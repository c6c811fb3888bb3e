// Package forms holds the signup form as a static field table and turns the
// collected text values into a validated models.SignupProfile.
//
// The table is pure data: the CLI renders one prompt per Field in order and
// Validate evaluates each Rule with go-playground/validator.
package forms

// InputKind tells the renderer how to read a field.
type InputKind string

const (
	KindText     InputKind = "text"
	KindPassword InputKind = "password"
	KindNumeric  InputKind = "numeric"
	KindEmail    InputKind = "email"
	KindPhone    InputKind = "phone"
)

// Field IDs double as the keys of the values map passed to Validate.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldAge       = "age"
	FieldGender    = "gender"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

// Field describes one form input. Rule is a validator tag; empty means the
// value is accepted as typed.
type Field struct {
	ID          string
	Label       string
	Placeholder string
	Kind        InputKind
	Rule        string
}

// SignupFields lists the signup inputs in display order.
var SignupFields = []Field{
	{ID: FieldFirstName, Label: "First Name *", Placeholder: "firstName", Kind: KindText, Rule: "required"},
	{ID: FieldLastName, Label: "Last Name *", Placeholder: "lastName", Kind: KindText, Rule: "required"},
	{ID: FieldUsername, Label: "Username *", Placeholder: "username", Kind: KindText, Rule: "required"},
	{ID: FieldPassword, Label: "Password *", Placeholder: "••••••••", Kind: KindPassword, Rule: "required"},
	{ID: FieldAge, Label: "Age", Placeholder: "age", Kind: KindNumeric, Rule: "omitempty,number"},
	{ID: FieldGender, Label: "Gender", Placeholder: "male/female/other", Kind: KindText},
	{ID: FieldEmail, Label: "Email", Placeholder: "@example.com", Kind: KindEmail, Rule: "omitempty,email"},
	{ID: FieldPhone, Label: "Phone", Placeholder: "+92 234567890", Kind: KindPhone},
}
