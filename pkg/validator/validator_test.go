package validator

import "testing"

type bookingForm struct {
	Email   string `validate:"required,email"`
	Code    string `validate:"omitempty,len=8"`
	Time    string `validate:"omitempty,hhmm"`
	Weekday string `validate:"omitempty,weekday"`
}

func TestValidate_HHMM(t *testing.T) {
	v := NewValidator()

	valid := []string{"00:00", "09:30", "18:00", "23:59"}
	for _, in := range valid {
		if err := v.Validate(&bookingForm{Email: "a@b.com", Time: in}); err != nil {
			t.Errorf("time %q: unexpected error %v", in, err)
		}
	}

	invalid := []string{"24:00", "9:30", "18:60", "1800", "six pm"}
	for _, in := range invalid {
		if err := v.Validate(&bookingForm{Email: "a@b.com", Time: in}); err == nil {
			t.Errorf("time %q: expected validation error", in)
		}
	}
}

func TestValidate_Weekday(t *testing.T) {
	v := NewValidator()

	valid := []string{"monday", "Monday", "SATURDAY", "sunday"}
	for _, in := range valid {
		if err := v.Validate(&bookingForm{Email: "a@b.com", Weekday: in}); err != nil {
			t.Errorf("weekday %q: unexpected error %v", in, err)
		}
	}

	invalid := []string{"mon", "funday", "lundi"}
	for _, in := range invalid {
		if err := v.Validate(&bookingForm{Email: "a@b.com", Weekday: in}); err == nil {
			t.Errorf("weekday %q: expected validation error", in)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bookingForm{Email: "not-an-email", Code: "ABC", Weekday: "funday"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := v.FormatValidationErrors(err)
	if formatted["Email"] == "" {
		t.Error("expected a message for Email")
	}
	if formatted["Code"] != "Code must be exactly 8 characters" {
		t.Errorf("unexpected Code message: %q", formatted["Code"])
	}
	if formatted["Weekday"] != "Weekday must be a weekday name" {
		t.Errorf("unexpected Weekday message: %q", formatted["Weekday"])
	}
}
