package blog

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/solvex-capital/marketing-core/internal/pkg/pagination"
	"github.com/solvex-capital/marketing-core/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.SetupTestDB(t), zap.NewNop())
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func mustCreateType(t *testing.T, svc *Service, name string) string {
	t.Helper()
	bt, err := svc.CreateBlogType(&CreateBlogTypeDTO{Name: name})
	if err != nil {
		t.Fatalf("CreateBlogType(%s): %v", name, err)
	}
	return bt.TypeID
}

func mustCreateBlog(t *testing.T, svc *Service, typeID, title string, published bool) string {
	t.Helper()
	b, err := svc.CreateBlog(&CreateBlogDTO{
		Title:       title,
		Content:     "some content",
		Excerpt:     "a short excerpt",
		Author:      "Test Author",
		TypeID:      typeID,
		IsPublished: boolPtr(published),
	})
	if err != nil {
		t.Fatalf("CreateBlog(%s): %v", title, err)
	}
	return b.BlogID
}

func TestCreateBlog_DerivesSlugAndReadTime(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")

	content := strings.TrimSpace(strings.Repeat("word ", 400))
	b, err := svc.CreateBlog(&CreateBlogDTO{
		Title:   "My First Post!",
		Content: content,
		Author:  "Jordan",
		TypeID:  typeID,
	})
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}

	if b.Slug != "my-first-post" {
		t.Errorf("slug = %q, want my-first-post", b.Slug)
	}
	if b.ReadTime != 2 {
		t.Errorf("readTime = %d, want 2", b.ReadTime)
	}
	if b.BlogID == "" {
		t.Error("blogId not generated")
	}
	if b.IsPublished || b.PublishedAt != nil {
		t.Errorf("new blog should be unpublished, got published=%v publishedAt=%v", b.IsPublished, b.PublishedAt)
	}
}

func TestCreateBlog_SanitizesContent(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")

	b, err := svc.CreateBlog(&CreateBlogDTO{
		Title:   "<script>alert(1)</script>Safe Title",
		Content: `<p>Hello</p><script>alert("xss")</script>`,
		Author:  "Jordan",
		TypeID:  typeID,
	})
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	if b.Title != "Safe Title" {
		t.Errorf("title = %q, script survived sanitization", b.Title)
	}
	if b.Content != "<p>Hello</p>" {
		t.Errorf("content = %q, want <p>Hello</p>", b.Content)
	}
}

func TestCreateBlog_DuplicateSlugConflicts(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")

	mustCreateBlog(t, svc, typeID, "Same Title", true)
	_, err := svc.CreateBlog(&CreateBlogDTO{
		Title:   "Same Title",
		Content: "other content",
		Author:  "Jordan",
		TypeID:  typeID,
	})
	if err == nil {
		t.Fatal("expected duplicate slug error, got nil")
	}
}

func TestUpdateBlog_PublishTransitionStampsPublishedAt(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")
	blogID := mustCreateBlog(t, svc, typeID, "Draft Post", false)

	if _, err := svc.UpdateBlog(blogID, &UpdateBlogDTO{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("UpdateBlog: %v", err)
	}

	b, err := svc.GetByBlogID(blogID, true)
	if err != nil || b == nil {
		t.Fatalf("GetByBlogID: %v, %v", b, err)
	}
	if !b.IsPublished {
		t.Error("blog not published after update")
	}
	if b.PublishedAt == nil {
		t.Fatal("publishedAt not stamped on first publish")
	}

	first := *b.PublishedAt
	// unpublish and re-publish; the original timestamp must survive
	if _, err := svc.UpdateBlog(blogID, &UpdateBlogDTO{IsPublished: boolPtr(false)}); err != nil {
		t.Fatalf("UpdateBlog(unpublish): %v", err)
	}
	if _, err := svc.UpdateBlog(blogID, &UpdateBlogDTO{IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("UpdateBlog(republish): %v", err)
	}
	b, _ = svc.GetByBlogID(blogID, true)
	if b.PublishedAt == nil || !b.PublishedAt.Equal(first) {
		t.Errorf("publishedAt changed on re-publish: %v != %v", b.PublishedAt, first)
	}
}

func TestUpdateBlog_ContentChangeRecomputesReadTime(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")
	blogID := mustCreateBlog(t, svc, typeID, "Short Post", true)

	longContent := strings.TrimSpace(strings.Repeat("word ", 1000))
	if _, err := svc.UpdateBlog(blogID, &UpdateBlogDTO{Content: strPtr(longContent)}); err != nil {
		t.Fatalf("UpdateBlog: %v", err)
	}

	b, _ := svc.GetByBlogID(blogID, true)
	if b.ReadTime != 5 {
		t.Errorf("readTime = %d, want 5 after content change", b.ReadTime)
	}
}

func TestUpdateBlog_NotFound(t *testing.T) {
	svc := newTestService(t)
	b, err := svc.UpdateBlog("missing-id", &UpdateBlogDTO{Title: strPtr("X")})
	if err != nil {
		t.Fatalf("UpdateBlog: %v", err)
	}
	if b != nil {
		t.Errorf("UpdateBlog(missing) = %+v, want nil", b)
	}
}

func TestDeleteBlog_SoftDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")
	blogID := mustCreateBlog(t, svc, typeID, "Doomed Post", true)

	deleted, err := svc.DeleteBlog(blogID)
	if err != nil || !deleted {
		t.Fatalf("DeleteBlog = %v, %v", deleted, err)
	}

	if b, _ := svc.GetByBlogID(blogID, true); b != nil {
		t.Error("deleted blog still visible in admin mode")
	}

	deleted, err = svc.DeleteBlog(blogID)
	if err != nil {
		t.Fatalf("second DeleteBlog: %v", err)
	}
	if deleted {
		t.Error("second delete reported success, want not-found")
	}
}

func TestGetByBlogID_VisibilityModes(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")
	blogID := mustCreateBlog(t, svc, typeID, "Hidden Draft", false)

	if b, _ := svc.GetByBlogID(blogID, false); b != nil {
		t.Error("unpublished blog visible without admin mode")
	}
	if b, _ := svc.GetByBlogID(blogID, true); b == nil {
		t.Error("unpublished blog invisible in admin mode")
	}
}

func TestGetBlogsByType_Pagination(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")
	for i := 0; i < 15; i++ {
		mustCreateBlog(t, svc, typeID, fmt.Sprintf("Post %02d", i), true)
	}

	blogs, pag, err := svc.GetBlogsByType(typeID, pagination.Query{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("GetBlogsByType: %v", err)
	}
	if len(blogs) != 5 {
		t.Errorf("page 2 returned %d blogs, want 5", len(blogs))
	}
	if pag.Total != 15 || pag.TotalPages != 2 || pag.HasNextPage {
		t.Errorf("pagination = %+v", pag)
	}
}

func TestSearch_MatchesTitleAndContent(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")

	if _, err := svc.CreateBlog(&CreateBlogDTO{
		Title: "Quarterly Results", Content: "strong growth figures", Author: "A", TypeID: typeID,
		IsPublished: boolPtr(true),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateBlog(&CreateBlogDTO{
		Title: "Team Update", Content: "we discuss growth plans", Author: "A", TypeID: typeID,
		IsPublished: boolPtr(true),
	}); err != nil {
		t.Fatal(err)
	}
	mustCreateBlog(t, svc, typeID, "Unrelated", true)

	blogs, pag, err := svc.Search("growth", pagination.Query{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(blogs) != 2 || pag.Total != 2 {
		t.Errorf("Search(growth) = %d rows, total %d, want 2", len(blogs), pag.Total)
	}
}

func TestIncrementViewCount(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")
	blogID := mustCreateBlog(t, svc, typeID, "Popular Post", true)

	for i := 0; i < 3; i++ {
		if err := svc.IncrementViewCount(blogID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}

	b, _ := svc.GetByBlogID(blogID, true)
	if b.ViewCount != 3 {
		t.Errorf("viewCount = %d, want 3", b.ViewCount)
	}
}

func TestDeleteBlogType_CascadesToBlogs(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")
	otherType := mustCreateType(t, svc, "Insights")

	var doomed []string
	for i := 0; i < 3; i++ {
		doomed = append(doomed, mustCreateBlog(t, svc, typeID, fmt.Sprintf("Doomed %d", i), true))
	}
	survivor := mustCreateBlog(t, svc, otherType, "Survivor", true)

	result, err := svc.DeleteBlogType(typeID)
	if err != nil {
		t.Fatalf("DeleteBlogType: %v", err)
	}
	if result == nil || !result.BlogTypeDeleted {
		t.Fatalf("DeleteBlogType result = %+v", result)
	}
	if result.BlogsDeletedCount != 3 || len(result.DeletedBlogIDs) != 3 {
		t.Errorf("cascade result = %+v, want 3 deleted blogs", result)
	}

	for _, blogID := range doomed {
		if b, _ := svc.GetByBlogID(blogID, true); b != nil {
			t.Errorf("cascaded blog %s still visible", blogID)
		}
	}
	if b, _ := svc.GetByBlogID(survivor, true); b == nil {
		t.Error("blog of another type was cascaded")
	}
	if bt, _ := svc.GetTypeByTypeID(typeID); bt != nil {
		t.Error("deleted type still visible")
	}
}

func TestDeleteBlogType_NotFoundPerformsNoWrites(t *testing.T) {
	svc := newTestService(t)
	// a blog referencing a type that never existed must survive the attempt
	blogID := mustCreateBlog(t, svc, "ghost-type-id", "Orphan", true)

	result, err := svc.DeleteBlogType("ghost-type-id")
	if err != nil {
		t.Fatalf("DeleteBlogType: %v", err)
	}
	if result != nil {
		t.Fatalf("DeleteBlogType(missing) = %+v, want nil", result)
	}
	if b, _ := svc.GetByBlogID(blogID, true); b == nil {
		t.Error("blog was soft-deleted even though the type lookup failed")
	}
}

func TestDeleteBlogType_SecondDeleteIsNotFound(t *testing.T) {
	svc := newTestService(t)
	typeID := mustCreateType(t, svc, "News")

	if result, err := svc.DeleteBlogType(typeID); err != nil || result == nil {
		t.Fatalf("first DeleteBlogType = %+v, %v", result, err)
	}
	result, err := svc.DeleteBlogType(typeID)
	if err != nil {
		t.Fatalf("second DeleteBlogType: %v", err)
	}
	if result != nil {
		t.Errorf("second DeleteBlogType = %+v, want nil", result)
	}
}

func TestCreateBlogType_DuplicateNameConflicts(t *testing.T) {
	svc := newTestService(t)
	mustCreateType(t, svc, "News")
	if _, err := svc.CreateBlogType(&CreateBlogTypeDTO{Name: "News"}); err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
}

func TestCreateBlogType_InactiveFlagPersists(t *testing.T) {
	svc := newTestService(t)
	bt, err := svc.CreateBlogType(&CreateBlogTypeDTO{Name: "Hidden", IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("CreateBlogType: %v", err)
	}

	stored, err := svc.GetTypeByTypeID(bt.TypeID)
	if err != nil {
		t.Fatalf("GetTypeByTypeID: %v", err)
	}
	if stored == nil || stored.IsActive {
		t.Fatal("inactive type was stored as active")
	}
}

func TestGetActiveTypes_OrderAndFiltering(t *testing.T) {
	svc := newTestService(t)
	mustCreateType(t, svc, "Zebra")
	mustCreateType(t, svc, "Alpha")
	if _, err := svc.CreateBlogType(&CreateBlogTypeDTO{Name: "Hidden", IsActive: boolPtr(false)}); err != nil {
		t.Fatal(err)
	}

	types, err := svc.GetActiveTypes()
	if err != nil {
		t.Fatalf("GetActiveTypes: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("GetActiveTypes returned %d, want 2", len(types))
	}
	if types[0].Name != "Alpha" || types[1].Name != "Zebra" {
		t.Errorf("types out of order: %s, %s", types[0].Name, types[1].Name)
	}
}
