package services

import (
	"errors"
	"testing"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"github.com/shopspring/decimal"
)

func seedCatalog(t *testing.T, svc *LoanTypeService) []models.LoanType {
	t.Helper()

	var created []models.LoanType
	for _, def := range models.DefaultLoanTypes() {
		lt, err := svc.Create(&CreateLoanTypeRequest{
			Name:          def.Name,
			Description:   def.Description,
			InterestRate:  def.InterestRate,
			MaxAmount:     def.MaxAmount,
			MinTenure:     def.MinTenure,
			MaxTenure:     def.MaxTenure,
			ProcessingFee: def.ProcessingFee,
			IsActive:      def.IsActive,
		})
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", def.Name, err)
		}
		created = append(created, *lt)
	}
	return created
}

func TestLoanTypeCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewLoanTypeService(db)

	tests := []struct {
		name string
		req  *CreateLoanTypeRequest
	}{
		{"negative min tenure", &CreateLoanTypeRequest{Name: "A", MinTenure: -1, MaxTenure: 12}},
		{"min above max", &CreateLoanTypeRequest{Name: "B", MinTenure: 24, MaxTenure: 12}},
		{"negative rate", &CreateLoanTypeRequest{Name: "C", InterestRate: decimal.NewFromFloat(-0.1)}},
		{"negative amount", &CreateLoanTypeRequest{Name: "D", MaxAmount: decimal.NewFromInt(-1)}},
		{"negative fee", &CreateLoanTypeRequest{Name: "E", ProcessingFee: decimal.NewFromFloat(-2)}},
	}

	for _, tt := range tests {
		_, err := svc.Create(tt.req)
		var appErr *response.AppError
		if !errors.As(err, &appErr) || appErr.Code != response.CodeBadRequest {
			t.Errorf("%s: expected a bad-request error, got %v", tt.name, err)
		}
	}

	var count int64
	db.Model(&models.LoanType{}).Count(&count)
	if count != 0 {
		t.Errorf("row count = %d, expected 0 after rejected creates", count)
	}
}

func TestLoanTypeCreate_PersonalLoan(t *testing.T) {
	db := newTestDB(t)
	svc := NewLoanTypeService(db)

	lt, err := svc.Create(&CreateLoanTypeRequest{
		Name:          "Personal Loan",
		InterestRate:  decimal.NewFromFloat(10.5),
		MaxAmount:     decimal.NewFromInt(1000000),
		MinTenure:     12,
		MaxTenure:     60,
		ProcessingFee: decimal.NewFromFloat(2.5),
		IsActive:      true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !lt.InterestRate.Equal(decimal.NewFromFloat(10.5)) {
		t.Errorf("InterestRate = %s, expected 10.5", lt.InterestRate)
	}
	if !lt.MaxAmount.Equal(decimal.NewFromInt(1000000)) {
		t.Errorf("MaxAmount = %s, expected 1000000", lt.MaxAmount)
	}
	if !lt.IsActive {
		t.Error("IsActive should be true")
	}
}

func TestLoanTypeUpdate_PartialAndRevalidated(t *testing.T) {
	db := newTestDB(t)
	svc := NewLoanTypeService(db)
	catalog := seedCatalog(t, svc)

	newRate := decimal.NewFromFloat(11.25)
	lt, err := svc.Update(catalog[0].ID, &UpdateLoanTypeRequest{InterestRate: &newRate})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !lt.InterestRate.Equal(newRate) {
		t.Errorf("InterestRate = %s, expected %s", lt.InterestRate, newRate)
	}
	if lt.Name != catalog[0].Name {
		t.Errorf("Name = %q, changed unexpectedly", lt.Name)
	}

	// An update that would leave min_tenure above max_tenure is rejected
	// even though each field alone is well-formed.
	badMin := catalog[0].MaxTenure + 1
	_, err = svc.Update(catalog[0].ID, &UpdateLoanTypeRequest{MinTenure: &badMin})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.CodeBadRequest {
		t.Errorf("expected a bad-request error, got %v", err)
	}
}

func TestLoanTypeToggleActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewLoanTypeService(db)
	catalog := seedCatalog(t, svc)

	lt, err := svc.ToggleActive(catalog[0].ID)
	if err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}
	if lt.IsActive {
		t.Error("IsActive should be false after first toggle")
	}

	// Toggling twice restores the original state.
	lt, err = svc.ToggleActive(catalog[0].ID)
	if err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}
	if !lt.IsActive {
		t.Error("IsActive should be true after second toggle")
	}
}

func TestLoanTypeListActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewLoanTypeService(db)
	catalog := seedCatalog(t, svc)

	if _, err := svc.ToggleActive(catalog[0].ID); err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != len(catalog)-1 {
		t.Errorf("len(active) = %d, expected %d", len(active), len(catalog)-1)
	}
	for _, lt := range active {
		if lt.ID == catalog[0].ID {
			t.Error("deactivated entry still visible in ListActive")
		}
	}

	all, err := svc.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != len(catalog) {
		t.Errorf("len(all) = %d, expected %d", len(all), len(catalog))
	}
}

func TestLoanTypeDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLoanTypeService(db)

	err := svc.Delete(42)
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != response.CodeNotFound {
		t.Errorf("expected a not-found error, got %v", err)
	}
}
