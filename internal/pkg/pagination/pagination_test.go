package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext_Defaults(t *testing.T) {
	q := FromContext(queryContext(t, ""))
	if q.Page != DefaultPage || q.Limit != DefaultLimit {
		t.Errorf("FromContext() = %+v, want page=%d limit=%d", q, DefaultPage, DefaultLimit)
	}
}

func TestFromContext_ClampsBadInput(t *testing.T) {
	cases := []struct {
		raw       string
		wantPage  int
		wantLimit int
	}{
		{"page=0&limit=0", DefaultPage, DefaultLimit},
		{"page=-3&limit=-1", DefaultPage, DefaultLimit},
		{"page=abc&limit=xyz", DefaultPage, DefaultLimit},
		{"page=2&limit=500", 2, MaxLimit},
	}
	for _, tc := range cases {
		q := FromContext(queryContext(t, tc.raw))
		if q.Page != tc.wantPage || q.Limit != tc.wantLimit {
			t.Errorf("FromContext(%q) = %+v, want page=%d limit=%d", tc.raw, q, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestMake(t *testing.T) {
	r := Make(15, Query{Page: 2, Limit: 10})
	if r.Total != 15 || r.TotalPages != 2 || r.HasNextPage {
		t.Errorf("Make(15, page 2, limit 10) = %+v", r)
	}

	r = Make(15, Query{Page: 1, Limit: 10})
	if !r.HasNextPage {
		t.Errorf("Make(15, page 1, limit 10).HasNextPage = false, want true")
	}

	r = Make(0, Query{Page: 1, Limit: 10})
	if r.TotalPages != 0 || r.HasNextPage {
		t.Errorf("Make(0) = %+v", r)
	}
}
