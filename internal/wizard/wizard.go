// Package wizard implements the five-step loan application form: a linear
// state machine with per-step validation. Field values are kept as submitted
// strings; parsing into typed columns happens at persistence time.
package wizard

import "fmt"

// Wizard steps, in order. There is no branching.
const (
	StepPersonalInfo    = 1
	StepAddressInfo     = 2
	StepEmploymentInfo  = 3
	StepLoanDetails     = 4
	StepDocumentsUpload = 5

	MinStep = StepPersonalInfo
	MaxStep = StepDocumentsUpload
)

// Form holds the raw field values accumulated across all steps. Keys in
// validation error maps match the json tags below.
type Form struct {
	// Step 1: personal info
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`

	// Step 2: address info
	CurrentAddress        string `json:"currentAddress"`
	PermanentAddress      string `json:"permanentAddress"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	Pincode               string `json:"pincode"`
	ResidenceType         string `json:"residenceType"`
	YearsAtCurrentAddress string `json:"yearsAtCurrentAddress"`

	// Step 3: employment info
	EmploymentType   string `json:"employmentType"`
	CompanyName      string `json:"companyName"`
	Designation      string `json:"designation"`
	WorkExperience   string `json:"workExperience"`
	MonthlyIncome    string `json:"monthlyIncome"`
	AdditionalIncome string `json:"additionalIncome"`
	OfficialEmail    string `json:"officialEmail"`
	OfficeAddress    string `json:"officeAddress"`

	// Step 4: loan details
	LoanType        string `json:"loanType"`
	LoanAmount      string `json:"loanAmount"`
	LoanPurpose     string `json:"loanPurpose"`
	PreferredTenure string `json:"preferredTenure"`
	ExistingLoans   string `json:"existingLoans"`
	BankAccount     string `json:"bankAccount"`
	IFSCCode        string `json:"ifscCode"`

	// Step 5: document uploads. Values are upload references (paths or
	// object keys). Collected but not required for submission; see the
	// soft-requirement note on ValidateStep.
	IdentityProof  string `json:"identityProof"`
	AddressProof   string `json:"addressProof"`
	IncomeProof    string `json:"incomeProof"`
	BankStatements string `json:"bankStatements"`
	Photograph     string `json:"photograph"`
}

// requiredField pairs an error-map key with its value and display label.
type requiredField struct {
	key   string
	value string
	label string
}

func requiredForStep(f *Form, step int) []requiredField {
	switch step {
	case StepPersonalInfo:
		return []requiredField{
			{"firstName", f.FirstName, "First name"},
			{"lastName", f.LastName, "Last name"},
			{"email", f.Email, "Email"},
			{"phone", f.Phone, "Phone"},
			{"dateOfBirth", f.DateOfBirth, "Date of birth"},
		}
	case StepAddressInfo:
		return []requiredField{
			{"currentAddress", f.CurrentAddress, "Current address"},
			{"city", f.City, "City"},
			{"state", f.State, "State"},
			{"pincode", f.Pincode, "Pincode"},
		}
	case StepEmploymentInfo:
		return []requiredField{
			{"employmentType", f.EmploymentType, "Employment type"},
			{"monthlyIncome", f.MonthlyIncome, "Monthly income"},
		}
	case StepLoanDetails:
		return []requiredField{
			{"loanAmount", f.LoanAmount, "Loan amount"},
			{"loanPurpose", f.LoanPurpose, "Loan purpose"},
			{"preferredTenure", f.PreferredTenure, "Preferred tenure"},
		}
	}
	// Step 5: uploads are presented as required in the UI but submission is
	// not blocked on their absence. Soft requirement, kept as-is.
	return nil
}

// ValidateStep checks the required fields of one step and returns
// field-keyed error messages. An empty map means the step is valid.
func ValidateStep(f *Form, step int) map[string]string {
	errs := make(map[string]string)
	for _, rf := range requiredForStep(f, step) {
		if rf.value == "" {
			errs[rf.key] = fmt.Sprintf("%s is required", rf.label)
		}
	}
	return errs
}

// ValidateAll runs every step's validation and merges the results.
func ValidateAll(f *Form) map[string]string {
	errs := make(map[string]string)
	for step := MinStep; step <= MaxStep; step++ {
		for k, v := range ValidateStep(f, step) {
			errs[k] = v
		}
	}
	return errs
}

// Machine drives the wizard through its steps. Zero value is not usable;
// construct with New.
type Machine struct {
	form      *Form
	step      int
	submitted bool
}

func New(form *Form) *Machine {
	return &Machine{form: form, step: MinStep}
}

// Step returns the current step (1..5).
func (m *Machine) Step() int { return m.step }

// Submitted reports whether the wizard reached its terminal state.
func (m *Machine) Submitted() bool { return m.submitted }

// Form returns the accumulated form record.
func (m *Machine) Form() *Form { return m.form }

// Next validates the current step. On success it advances (capped at the
// last step) and returns nil; on failure it stays put and returns the
// field-keyed error messages.
func (m *Machine) Next() map[string]string {
	if m.submitted {
		return nil
	}
	if errs := ValidateStep(m.form, m.step); len(errs) > 0 {
		return errs
	}
	if m.step < MaxStep {
		m.step++
	}
	return nil
}

// Back moves one step backwards, to a floor of the first step. No
// validation runs on the way back.
func (m *Machine) Back() {
	if m.submitted {
		return
	}
	if m.step > MinStep {
		m.step--
	}
}

// Submit completes the wizard. It is only allowed from the last step and
// re-validates the whole form so a client cannot skip ahead. On success the
// machine enters its terminal state and the caller persists the form.
func (m *Machine) Submit() (map[string]string, error) {
	if m.submitted {
		return nil, fmt.Errorf("application already submitted")
	}
	if m.step != MaxStep {
		return nil, fmt.Errorf("submit is only allowed from step %d, current step is %d", MaxStep, m.step)
	}
	if errs := ValidateAll(m.form); len(errs) > 0 {
		return errs, nil
	}
	m.submitted = true
	return nil, nil
}
