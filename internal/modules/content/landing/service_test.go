package landing

import (
	"testing"

	"go.uber.org/zap"

	"github.com/solvex-capital/marketing-core/internal/models"
	"github.com/solvex-capital/marketing-core/internal/pkg/apperror"
	"github.com/solvex-capital/marketing-core/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.SetupTestDB(t), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func fullDTO() *UpsertLandingDTO {
	return &UpsertLandingDTO{
		Header:   strPtr("Welcome"),
		Subtitle: strPtr("We invest in growth"),
		Numbers: []models.NumberItem{
			{Value: "120+", Label: "Companies"},
			{Value: "$2B", Label: "Assets"},
		},
	}
}

func TestCreateOrUpdate_CreateRequiresAllFields(t *testing.T) {
	svc := newTestService(t)

	cases := []*UpsertLandingDTO{
		{Subtitle: strPtr("sub"), Numbers: []models.NumberItem{{Value: "1", Label: "x"}}},
		{Header: strPtr("head"), Numbers: []models.NumberItem{{Value: "1", Label: "x"}}},
		{Header: strPtr("head"), Subtitle: strPtr("sub")},
	}
	for i, dto := range cases {
		_, err := svc.CreateOrUpdate(dto)
		appErr, ok := apperror.As(err)
		if !ok || appErr.Code != apperror.CodeValidation {
			t.Errorf("case %d: err = %v, want validation error", i, err)
		}
	}

	if page, _ := svc.Get(); page != nil {
		t.Errorf("partial create left a row behind: %+v", page)
	}
}

func TestCreateOrUpdate_CreateThenPartialMerge(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateOrUpdate(fullDTO())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Header != "Welcome" || len(created.Numbers) != 2 {
		t.Fatalf("created = %+v", created)
	}

	updated, err := svc.CreateOrUpdate(&UpsertLandingDTO{Header: strPtr("New Headline")})
	if err != nil {
		t.Fatalf("partial update: %v", err)
	}
	if updated.Header != "New Headline" {
		t.Errorf("header = %q", updated.Header)
	}
	if updated.Subtitle != "We invest in growth" || len(updated.Numbers) != 2 {
		t.Errorf("partial update clobbered untouched fields: %+v", updated)
	}
}

func TestCreateOrUpdate_StaysSingleton(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CreateOrUpdate(fullDTO()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateOrUpdate(fullDTO()); err != nil {
		t.Fatal(err)
	}

	var count int64
	svc.db.Model(&models.LandingPageModel{}).Count(&count)
	if count != 1 {
		t.Errorf("landing page rows = %d, want 1", count)
	}
}

func TestCreateOrUpdate_SanitizesInput(t *testing.T) {
	svc := newTestService(t)

	dto := fullDTO()
	dto.Header = strPtr("<script>alert(1)</script>Clean Header")
	page, err := svc.CreateOrUpdate(dto)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if page.Header != "Clean Header" {
		t.Errorf("header = %q, script survived", page.Header)
	}
}

func TestGet_EmptyReturnsNil(t *testing.T) {
	svc := newTestService(t)
	page, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if page != nil {
		t.Errorf("Get() = %+v, want nil", page)
	}
}
