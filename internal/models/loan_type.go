package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType is one catalog entry describing a loan product. Only active
// entries are visible on the public site.
type LoanType struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description   string          `gorm:"size:1000" json:"description"`
	InterestRate  decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	MaxAmount     decimal.Decimal `gorm:"type:decimal(14,2)" json:"max_amount"`
	MinTenure     int             `json:"min_tenure"`
	MaxTenure     int             `json:"max_tenure"`
	ProcessingFee decimal.Decimal `gorm:"type:decimal(6,2)" json:"processing_fee"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (LoanType) TableName() string { return "loan_types" }

// DefaultLoanTypes returns the catalog seeded on a fresh install.
func DefaultLoanTypes() []LoanType {
	return []LoanType{
		{
			Name:          "Personal Loan",
			Description:   "Unsecured loan for personal needs such as medical expenses, travel or weddings.",
			InterestRate:  decimal.NewFromFloat(10.5),
			MaxAmount:     decimal.NewFromInt(1000000),
			MinTenure:     12,
			MaxTenure:     60,
			ProcessingFee: decimal.NewFromFloat(2.5),
			IsActive:      true,
		},
		{
			Name:          "Business Loan",
			Description:   "Working-capital and expansion loan for small businesses.",
			InterestRate:  decimal.NewFromFloat(12.0),
			MaxAmount:     decimal.NewFromInt(5000000),
			MinTenure:     12,
			MaxTenure:     84,
			ProcessingFee: decimal.NewFromFloat(2.0),
			IsActive:      true,
		},
		{
			Name:          "Home Loan",
			Description:   "Loan for purchase, construction or renovation of residential property.",
			InterestRate:  decimal.NewFromFloat(8.75),
			MaxAmount:     decimal.NewFromInt(10000000),
			MinTenure:     60,
			MaxTenure:     240,
			ProcessingFee: decimal.NewFromFloat(1.0),
			IsActive:      true,
		},
		{
			Name:          "Vehicle Loan",
			Description:   "Loan for new and used two-wheelers and cars.",
			InterestRate:  decimal.NewFromFloat(9.5),
			MaxAmount:     decimal.NewFromInt(2000000),
			MinTenure:     12,
			MaxTenure:     84,
			ProcessingFee: decimal.NewFromFloat(1.5),
			IsActive:      true,
		},
	}
}
