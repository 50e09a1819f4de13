package services

import (
	"errors"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrganizationService struct {
	db *gorm.DB
}

func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{db: db}
}

// Get returns the singleton organization profile. When the row has not been
// created yet, the hardcoded default profile is returned instead so public
// pages always have something to render.
func (s *OrganizationService) Get() (*models.OrganizationInfo, error) {
	var info models.OrganizationInfo
	err := s.db.First(&info, models.OrganizationIdentity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultOrganizationInfo(), nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

type UpdateOrganizationRequest struct {
	Name            string `json:"name" binding:"required"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Description     string `json:"description"`
	EstablishedYear string `json:"established_year"`
	LicenseNumber   string `json:"license_number"`
	Website         string `json:"website"`
	LogoPath        string `json:"logo_path"`

	MondayHours    string `json:"monday_hours"`
	TuesdayHours   string `json:"tuesday_hours"`
	WednesdayHours string `json:"wednesday_hours"`
	ThursdayHours  string `json:"thursday_hours"`
	FridayHours    string `json:"friday_hours"`
	SaturdayHours  string `json:"saturday_hours"`
	SundayHours    string `json:"sunday_hours"`

	FacebookURL  string `json:"facebook_url"`
	TwitterURL   string `json:"twitter_url"`
	LinkedinURL  string `json:"linkedin_url"`
	InstagramURL string `json:"instagram_url"`
}

// Update upserts the singleton profile row under its fixed identity.
func (s *OrganizationService) Update(req *UpdateOrganizationRequest) (*models.OrganizationInfo, error) {
	info := models.OrganizationInfo{
		ID:              models.OrganizationIdentity,
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
		Description:     req.Description,
		EstablishedYear: req.EstablishedYear,
		LicenseNumber:   req.LicenseNumber,
		Website:         req.Website,
		LogoPath:        req.LogoPath,
		MondayHours:     req.MondayHours,
		TuesdayHours:    req.TuesdayHours,
		WednesdayHours:  req.WednesdayHours,
		ThursdayHours:   req.ThursdayHours,
		FridayHours:     req.FridayHours,
		SaturdayHours:   req.SaturdayHours,
		SundayHours:     req.SundayHours,
		FacebookURL:     req.FacebookURL,
		TwitterURL:      req.TwitterURL,
		LinkedinURL:     req.LinkedinURL,
		InstagramURL:    req.InstagramURL,
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&info).Error; err != nil {
		return nil, err
	}

	var saved models.OrganizationInfo
	if err := s.db.First(&saved, models.OrganizationIdentity).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
