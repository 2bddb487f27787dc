package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCategoryHandler_GetRecommended(t *testing.T) {
	r := gin.New()
	r.GET("/categories", NewCategoryHandler().GetRecommended)

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	categories := result["categories"].([]interface{})
	if len(categories) == 0 {
		t.Fatal("expected at least one recommended category")
	}

	found := false
	for _, c := range categories {
		if c == "Liên hoan" {
			found = true
		}
	}
	if !found {
		t.Error("expected Liên hoan among the recommended categories")
	}
}
