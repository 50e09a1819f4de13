package wizard

import "testing"

// completeForm returns a form with every required field filled.
func completeForm() *Form {
	return &Form{
		FirstName:       "Rajesh",
		LastName:        "Kumar",
		Email:           "r@example.com",
		Phone:           "9876543210",
		DateOfBirth:     "1990-01-01",
		CurrentAddress:  "12 Station Road",
		City:            "Kolkata",
		State:           "West Bengal",
		Pincode:         "700001",
		EmploymentType:  "Salaried",
		MonthlyIncome:   "45000",
		LoanType:        "Personal Loan",
		LoanAmount:      "200000",
		LoanPurpose:     "Medical expenses",
		PreferredTenure: "36",
	}
}

func TestValidateStep_RequiredFields(t *testing.T) {
	tests := []struct {
		step     int
		required []string
	}{
		{StepPersonalInfo, []string{"firstName", "lastName", "email", "phone", "dateOfBirth"}},
		{StepAddressInfo, []string{"currentAddress", "city", "state", "pincode"}},
		{StepEmploymentInfo, []string{"employmentType", "monthlyIncome"}},
		{StepLoanDetails, []string{"loanAmount", "loanPurpose", "preferredTenure"}},
		{StepDocumentsUpload, nil},
	}

	for _, tt := range tests {
		errs := ValidateStep(&Form{}, tt.step)
		if len(errs) != len(tt.required) {
			t.Errorf("step %d: got %d errors, expected %d: %v", tt.step, len(errs), len(tt.required), errs)
		}
		for _, key := range tt.required {
			if _, ok := errs[key]; !ok {
				t.Errorf("step %d: missing error for %q", tt.step, key)
			}
		}
	}
}

func TestValidateStep_CompleteFormPasses(t *testing.T) {
	f := completeForm()
	for step := MinStep; step <= MaxStep; step++ {
		if errs := ValidateStep(f, step); len(errs) > 0 {
			t.Errorf("step %d: unexpected errors on complete form: %v", step, errs)
		}
	}
}

func TestValidateStep_ErrorMessageFormat(t *testing.T) {
	errs := ValidateStep(&Form{}, StepPersonalInfo)
	if errs["dateOfBirth"] != "Date of birth is required" {
		t.Errorf("dateOfBirth error = %q, expected %q", errs["dateOfBirth"], "Date of birth is required")
	}
	if errs["email"] != "Email is required" {
		t.Errorf("email error = %q, expected %q", errs["email"], "Email is required")
	}
}

func TestNext_AdvancesOnlyWhenStepValid(t *testing.T) {
	m := New(completeForm())

	for step := MinStep; step < MaxStep; step++ {
		if m.Step() != step {
			t.Fatalf("expected step %d, got %d", step, m.Step())
		}
		if errs := m.Next(); len(errs) > 0 {
			t.Fatalf("step %d: Next() returned errors on valid form: %v", step, errs)
		}
	}
	if m.Step() != MaxStep {
		t.Errorf("expected final step %d, got %d", MaxStep, m.Step())
	}

	// Next on the last step stays capped at the last step.
	if errs := m.Next(); len(errs) > 0 {
		t.Errorf("Next() on last step returned errors: %v", errs)
	}
	if m.Step() != MaxStep {
		t.Errorf("Next() on last step moved to %d, expected %d", m.Step(), MaxStep)
	}
}

func TestNext_StaysOnInvalidStep(t *testing.T) {
	f := completeForm()
	f.Email = ""
	m := New(f)

	errs := m.Next()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if errs["email"] != "Email is required" {
		t.Errorf("email error = %q, expected %q", errs["email"], "Email is required")
	}
	if m.Step() != StepPersonalInfo {
		t.Errorf("step advanced to %d despite validation failure", m.Step())
	}

	// Filling the field unblocks the step.
	f.Email = "r@example.com"
	if errs := m.Next(); len(errs) > 0 {
		t.Errorf("Next() returned errors after fixing the field: %v", errs)
	}
	if m.Step() != StepAddressInfo {
		t.Errorf("expected step %d, got %d", StepAddressInfo, m.Step())
	}
}

func TestBack_DecrementsWithFloorAndNoValidation(t *testing.T) {
	// Empty form: Back must still work, regardless of field contents.
	m := New(&Form{})

	m.Back()
	if m.Step() != MinStep {
		t.Errorf("Back() at step 1 moved to %d", m.Step())
	}

	m2 := New(completeForm())
	m2.Next()
	m2.Next()
	if m2.Step() != StepEmploymentInfo {
		t.Fatalf("setup failed, step = %d", m2.Step())
	}

	m2.Form().CurrentAddress = "" // invalidate an earlier step
	m2.Back()
	if m2.Step() != StepAddressInfo {
		t.Errorf("Back() moved to %d, expected %d", m2.Step(), StepAddressInfo)
	}
	m2.Back()
	m2.Back()
	if m2.Step() != MinStep {
		t.Errorf("Back() should floor at %d, got %d", MinStep, m2.Step())
	}
}

func TestSubmit_OnlyFromLastStep(t *testing.T) {
	m := New(completeForm())

	if _, err := m.Submit(); err == nil {
		t.Error("Submit() from step 1 should return an error")
	}

	for m.Step() < MaxStep {
		if errs := m.Next(); len(errs) > 0 {
			t.Fatalf("unexpected validation errors: %v", errs)
		}
	}

	errs, err := m.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("Submit() validation errors = %v", errs)
	}
	if !m.Submitted() {
		t.Error("machine should be in submitted state")
	}

	if _, err := m.Submit(); err == nil {
		t.Error("double Submit() should return an error")
	}
}

func TestSubmit_RevalidatesWholeForm(t *testing.T) {
	f := completeForm()
	m := New(f)
	for m.Step() < MaxStep {
		m.Next()
	}

	// Clear an earlier step's field after reaching step 5.
	f.FirstName = ""

	errs, err := m.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if errs["firstName"] != "First name is required" {
		t.Errorf("firstName error = %q, expected %q", errs["firstName"], "First name is required")
	}
	if m.Submitted() {
		t.Error("machine should not be submitted after failed validation")
	}
}

func TestSubmit_DocumentsNotRequired(t *testing.T) {
	// No uploads attached; submission must still go through.
	f := completeForm()
	m := New(f)
	for m.Step() < MaxStep {
		m.Next()
	}

	errs, err := m.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(errs) > 0 {
		t.Errorf("missing documents should not block submission, got %v", errs)
	}
}

func TestScenario_Step1RajeshKumar(t *testing.T) {
	f := &Form{
		FirstName:   "Rajesh",
		LastName:    "Kumar",
		Email:       "r@example.com",
		Phone:       "9876543210",
		DateOfBirth: "1990-01-01",
	}
	m := New(f)

	if errs := m.Next(); len(errs) > 0 {
		t.Errorf("step 1 Next() should succeed, got %v", errs)
	}
	if m.Step() != StepAddressInfo {
		t.Errorf("step = %d, expected %d", m.Step(), StepAddressInfo)
	}

	// Same data minus email: exactly one error, attached to the email field.
	f2 := &Form{
		FirstName:   "Rajesh",
		LastName:    "Kumar",
		Phone:       "9876543210",
		DateOfBirth: "1990-01-01",
	}
	m2 := New(f2)
	errs := m2.Next()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if _, ok := errs["email"]; !ok {
		t.Error("error should be attached to the email field")
	}
	if m2.Step() != StepPersonalInfo {
		t.Errorf("step = %d, expected to stay on %d", m2.Step(), StepPersonalInfo)
	}
}
