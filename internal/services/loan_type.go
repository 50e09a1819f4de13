package services

import (
	"errors"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LoanTypeService struct {
	db *gorm.DB
}

func NewLoanTypeService(db *gorm.DB) *LoanTypeService {
	return &LoanTypeService{db: db}
}

type CreateLoanTypeRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	MaxAmount     decimal.Decimal `json:"max_amount"`
	MinTenure     int             `json:"min_tenure"`
	MaxTenure     int             `json:"max_tenure"`
	ProcessingFee decimal.Decimal `json:"processing_fee"`
	IsActive      bool            `json:"is_active"`
}

type UpdateLoanTypeRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	InterestRate  *decimal.Decimal `json:"interest_rate"`
	MaxAmount     *decimal.Decimal `json:"max_amount"`
	MinTenure     *int             `json:"min_tenure"`
	MaxTenure     *int             `json:"max_tenure"`
	ProcessingFee *decimal.Decimal `json:"processing_fee"`
	IsActive      *bool            `json:"is_active"`
}

// validateTerms enforces the catalog invariants: tenure bounds ordered,
// monetary and rate fields non-negative.
func validateTerms(interestRate, maxAmount, processingFee decimal.Decimal, minTenure, maxTenure int) error {
	if minTenure < 0 || maxTenure < 0 {
		return response.NewBadRequest("tenure must be non-negative")
	}
	if minTenure > maxTenure {
		return response.NewBadRequest("min_tenure must not exceed max_tenure")
	}
	if interestRate.IsNegative() {
		return response.NewBadRequest("interest_rate must be non-negative")
	}
	if maxAmount.IsNegative() {
		return response.NewBadRequest("max_amount must be non-negative")
	}
	if processingFee.IsNegative() {
		return response.NewBadRequest("processing_fee must be non-negative")
	}
	return nil
}

// ListActive returns active catalog entries, ordered by name. This is what
// public pages read.
func (s *LoanTypeService) ListActive() ([]models.LoanType, error) {
	var types []models.LoanType
	if err := s.db.Where("is_active = ?", true).Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// ListAll returns every catalog entry, active or not, ordered by name.
func (s *LoanTypeService) ListAll() ([]models.LoanType, error) {
	var types []models.LoanType
	if err := s.db.Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetByID returns one catalog entry.
func (s *LoanTypeService) GetByID(id uint) (*models.LoanType, error) {
	var lt models.LoanType
	if err := s.db.First(&lt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("loan type not found")
		}
		return nil, err
	}
	return &lt, nil
}

// Create adds a catalog entry after validating its terms.
func (s *LoanTypeService) Create(req *CreateLoanTypeRequest) (*models.LoanType, error) {
	if err := validateTerms(req.InterestRate, req.MaxAmount, req.ProcessingFee, req.MinTenure, req.MaxTenure); err != nil {
		return nil, err
	}

	lt := models.LoanType{
		Name:          req.Name,
		Description:   req.Description,
		InterestRate:  req.InterestRate,
		MaxAmount:     req.MaxAmount,
		MinTenure:     req.MinTenure,
		MaxTenure:     req.MaxTenure,
		ProcessingFee: req.ProcessingFee,
		IsActive:      req.IsActive,
	}

	if err := s.db.Create(&lt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("a loan type with this name already exists")
		}
		return nil, err
	}
	return &lt, nil
}

// Update applies a partial edit to a catalog entry, re-validating the
// resulting terms.
func (s *LoanTypeService) Update(id uint, req *UpdateLoanTypeRequest) (*models.LoanType, error) {
	lt, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	interestRate := lt.InterestRate
	if req.InterestRate != nil {
		interestRate = *req.InterestRate
		updates["interest_rate"] = *req.InterestRate
	}
	maxAmount := lt.MaxAmount
	if req.MaxAmount != nil {
		maxAmount = *req.MaxAmount
		updates["max_amount"] = *req.MaxAmount
	}
	processingFee := lt.ProcessingFee
	if req.ProcessingFee != nil {
		processingFee = *req.ProcessingFee
		updates["processing_fee"] = *req.ProcessingFee
	}
	minTenure := lt.MinTenure
	if req.MinTenure != nil {
		minTenure = *req.MinTenure
		updates["min_tenure"] = *req.MinTenure
	}
	maxTenure := lt.MaxTenure
	if req.MaxTenure != nil {
		maxTenure = *req.MaxTenure
		updates["max_tenure"] = *req.MaxTenure
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := validateTerms(interestRate, maxAmount, processingFee, minTenure, maxTenure); err != nil {
		return nil, err
	}

	if err := s.db.Model(lt).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Reload
	s.db.First(lt, id)
	return lt, nil
}

// Delete removes a catalog entry.
func (s *LoanTypeService) Delete(id uint) error {
	result := s.db.Delete(&models.LoanType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("loan type not found")
	}
	return nil
}

// ToggleActive inverts the is_active flag: fetch, invert, persist. Applying
// it twice restores the original value.
func (s *LoanTypeService) ToggleActive(id uint) (*models.LoanType, error) {
	lt, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(lt).Update("is_active", !lt.IsActive).Error; err != nil {
		return nil, err
	}

	s.db.First(lt, id)
	return lt, nil
}
