package card

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

func boolPtr(b bool) *bool { return &b }

func TestCreateOrUpdate_GeneratesIDs(t *testing.T) {
	svc := newTestService(t)

	card, err := svc.CreateOrUpdate(&UpsertCardDTO{
		CompanyName: strPtr("Acme Capital"),
		Sections: []models.CardSection{
			{Title: "Overview", Content: models.SectionContent{Kind: models.SectionContentText, Text: "A fund."}},
			{SectionID: "fixed-id", Title: "Strategy"},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrUpdate: %v", err)
	}

	if card.CardID == "" {
		t.Error("cardId not generated")
	}
	if card.Sections[0].SectionID == "" {
		t.Error("sectionId not generated for first section")
	}
	if card.Sections[1].SectionID != "fixed-id" {
		t.Errorf("provided sectionId overwritten: %q", card.Sections[1].SectionID)
	}
}

func TestCreateOrUpdate_UpdatesByCardID(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateOrUpdate(&UpsertCardDTO{CompanyName: strPtr("Acme")})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.CreateOrUpdate(&UpsertCardDTO{
		CardID:      created.CardID,
		CompanyLogo: strPtr("https://cdn.example.com/acme.png"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.CardID != created.CardID {
		t.Errorf("update created a new card: %s != %s", updated.CardID, created.CardID)
	}
	if updated.CompanyName != "Acme" {
		t.Errorf("update clobbered companyName: %q", updated.CompanyName)
	}
	if updated.CompanyLogo != "https://cdn.example.com/acme.png" {
		t.Errorf("companyLogo = %q", updated.CompanyLogo)
	}

	var count int64
	svc.db.Model(&models.InvestmentCardModel{}).Count(&count)
	if count != 1 {
		t.Errorf("card rows = %d, want 1", count)
	}
}

func TestCreateOrUpdate_RejectsDuplicateOrders(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateOrUpdate(&UpsertCardDTO{
		Sections: []models.CardSection{
			{Title: "One", Order: 1},
			{Title: "Also One", Order: 1},
		},
	})
	appErr, ok := apperror.As(err)
	if !ok || appErr.Code != apperror.CodeValidation {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestCreateOrUpdate_DeleteFlagSoftDeletes(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateOrUpdate(&UpsertCardDTO{CompanyName: strPtr("Doomed Inc")})
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := svc.CreateOrUpdate(&UpsertCardDTO{CardID: created.CardID, IsDeleted: boolPtr(true)})
	if err != nil {
		t.Fatalf("delete upsert: %v", err)
	}
	if !deleted.IsDeleted || deleted.DeletedAt == nil {
		t.Errorf("card not marked deleted: %+v", deleted.SoftDelete)
	}

	if live, _ := svc.GetByCardID(created.CardID); live != nil {
		t.Error("deleted card still returned by GetByCardID")
	}
	all, _ := svc.GetAll()
	if len(all) != 0 {
		t.Errorf("GetAll = %d cards, want 0", len(all))
	}
}

func TestCreateOrUpdate_DeleteMissingCardIsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateOrUpdate(&UpsertCardDTO{
		CardID:    "1b671a64-40d5-491e-99b0-da01ff1f3341",
		IsDeleted: boolPtr(true),
	})
	appErr, ok := apperror.As(err)
	if !ok || appErr.Code != apperror.CodeNotFound {
		t.Errorf("err = %v, want not-found error", err)
	}
}

func TestCreateOrUpdate_UpsertRevivesDeletedCard(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateOrUpdate(&UpsertCardDTO{CompanyName: strPtr("Phoenix")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateOrUpdate(&UpsertCardDTO{CardID: created.CardID, IsDeleted: boolPtr(true)}); err != nil {
		t.Fatal(err)
	}

	revived, err := svc.CreateOrUpdate(&UpsertCardDTO{CardID: created.CardID, IsDeleted: boolPtr(false)})
	if err != nil {
		t.Fatalf("revive: %v", err)
	}
	if revived.IsDeleted || revived.DeletedAt != nil {
		t.Errorf("card not revived: %+v", revived.SoftDelete)
	}
	if live, _ := svc.GetByCardID(created.CardID); live == nil {
		t.Error("revived card not returned by GetByCardID")
	}
}

func TestCreateOrUpdate_SanitizesSectionContent(t *testing.T) {
	svc := newTestService(t)

	card, err := svc.CreateOrUpdate(&UpsertCardDTO{
		Sections: []models.CardSection{
			{
				Title:   "<b>Metrics</b>",
				Content: models.SectionContent{Kind: models.SectionContentList, List: []string{"<i>10x</i> return", "clean"}},
			},
			{
				Content: models.SectionContent{Kind: models.SectionContentObject, Object: map[string]string{"aum": "<u>$2B</u>"}},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if card.Sections[0].Title != "Metrics" {
		t.Errorf("title = %q", card.Sections[0].Title)
	}
	if card.Sections[0].Content.List[0] != "10x return" {
		t.Errorf("list item = %q", card.Sections[0].Content.List[0])
	}
	if card.Sections[1].Content.Object["aum"] != "$2B" {
		t.Errorf("object value = %q", card.Sections[1].Content.Object["aum"])
	}
}
