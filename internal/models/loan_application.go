package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application lifecycle statuses. PENDING is assigned at submission; the
// remaining values are set only by explicit staff action.
const (
	StatusPending     = "PENDING"
	StatusUnderReview = "UNDER_REVIEW"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// TerminalStatus reports whether s ends the application lifecycle.
func TerminalStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected
}

// LoanApplication is one submitted loan application. ApplicationID is the
// human-readable token applicants use for status lookups; it never changes
// once assigned.
type LoanApplication struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ApplicationID string `gorm:"uniqueIndex;size:40;not null" json:"application_id"`

	// Personal
	FirstName     string `gorm:"size:100;not null" json:"first_name"`
	LastName      string `gorm:"size:100;not null" json:"last_name"`
	Email         string `gorm:"size:255;not null" json:"email"`
	Phone         string `gorm:"size:20;not null" json:"phone"`
	DateOfBirth   string `gorm:"size:10;not null" json:"date_of_birth"`
	Gender        string `gorm:"size:20" json:"gender,omitempty"`
	MaritalStatus string `gorm:"size:20" json:"marital_status,omitempty"`
	FatherName    string `gorm:"size:100" json:"father_name,omitempty"`
	MotherName    string `gorm:"size:100" json:"mother_name,omitempty"`

	// Address
	CurrentAddress        string `gorm:"size:500;not null" json:"current_address"`
	PermanentAddress      string `gorm:"size:500" json:"permanent_address,omitempty"`
	City                  string `gorm:"size:100;not null" json:"city"`
	State                 string `gorm:"size:100;not null" json:"state"`
	Pincode               string `gorm:"size:10;not null" json:"pincode"`
	ResidenceType         string `gorm:"size:50" json:"residence_type,omitempty"`
	YearsAtCurrentAddress int    `json:"years_at_current_address,omitempty"`

	// Employment
	EmploymentType   string          `gorm:"size:50;not null" json:"employment_type"`
	CompanyName      string          `gorm:"size:200" json:"company_name,omitempty"`
	Designation      string          `gorm:"size:100" json:"designation,omitempty"`
	WorkExperience   int             `json:"work_experience,omitempty"`
	MonthlyIncome    decimal.Decimal `gorm:"type:decimal(14,2)" json:"monthly_income"`
	AdditionalIncome decimal.Decimal `gorm:"type:decimal(14,2)" json:"additional_income,omitempty"`
	OfficialEmail    string          `gorm:"size:255" json:"official_email,omitempty"`
	OfficeAddress    string          `gorm:"size:500" json:"office_address,omitempty"`

	// Loan request
	LoanType        string          `gorm:"size:100;not null" json:"loan_type"`
	LoanAmount      decimal.Decimal `gorm:"type:decimal(14,2)" json:"loan_amount"`
	LoanPurpose     string          `gorm:"size:500;not null" json:"loan_purpose"`
	PreferredTenure int             `gorm:"not null" json:"preferred_tenure"`
	ExistingLoans   string          `gorm:"size:500" json:"existing_loans,omitempty"`
	BankAccount     string          `gorm:"size:30" json:"bank_account,omitempty"`
	IFSCCode        string          `gorm:"size:15" json:"ifsc_code,omitempty"`

	// Document upload references. Optional at submission.
	IdentityProof  string `gorm:"size:500" json:"identity_proof,omitempty"`
	AddressProof   string `gorm:"size:500" json:"address_proof,omitempty"`
	IncomeProof    string `gorm:"size:500" json:"income_proof,omitempty"`
	BankStatements string `gorm:"size:500" json:"bank_statements,omitempty"`
	Photograph     string `gorm:"size:500" json:"photograph,omitempty"`

	// Lifecycle
	Status         string     `gorm:"size:20;not null;default:PENDING;index" json:"status"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy     string     `gorm:"size:100" json:"reviewed_by,omitempty"`
	ReviewComments string     `gorm:"size:1000" json:"review_comments,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }
