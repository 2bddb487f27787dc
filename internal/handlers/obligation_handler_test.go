package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "choirfin/internal/errors"
	"choirfin/internal/models"
	"choirfin/internal/scheduler"
	"choirfin/internal/services"
)

// --- mock obligation service ---

type mockObligationService struct {
	dueFn     func(ref time.Time) []scheduler.Proposal
	confirmFn func(ruleID string, ref time.Time) (*models.Transaction, error)
}

func (m *mockObligationService) Due(ref time.Time) []scheduler.Proposal {
	if m.dueFn != nil {
		return m.dueFn(ref)
	}
	return []scheduler.Proposal{}
}

func (m *mockObligationService) Confirm(ruleID string, ref time.Time) (*models.Transaction, error) {
	if m.confirmFn != nil {
		return m.confirmFn(ruleID, ref)
	}
	return &models.Transaction{}, nil
}

var _ services.ObligationServicer = (*mockObligationService)(nil)

func setupObligationRouter(handler *ObligationHandler) *gin.Engine {
	r := gin.New()
	r.GET("/obligations", handler.GetDue)
	r.POST("/obligations/:id/confirm", handler.Confirm)
	return r
}

func TestObligationHandler_GetDue(t *testing.T) {
	t.Run("returns 200 with proposals for the given date", func(t *testing.T) {
		var captured time.Time
		svc := &mockObligationService{
			dueFn: func(ref time.Time) []scheduler.Proposal {
				captured = ref
				return []scheduler.Proposal{
					{
						RuleID: "rule-1",
						Period: "2024-02",
						Transaction: models.Transaction{
							Type:     models.TransactionTypeExpense,
							Category: "Cơ sở vật chất",
							Amount:   200_000,
							Date:     "2024-02-15",
						},
					},
				}
			},
		}
		r := setupObligationRouter(NewObligationHandler(svc))

		rec := doRequest(r, "GET", "/obligations?date=2024-02-20", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Format("2006-01-02") != "2024-02-20" {
			t.Errorf("expected reference date 2024-02-20, got %v", captured)
		}
		result := parseJSON(t, rec)
		proposals := result["proposals"].([]interface{})
		if len(proposals) != 1 {
			t.Fatalf("expected 1 proposal, got %d", len(proposals))
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupObligationRouter(NewObligationHandler(&mockObligationService{}))

		rec := doRequest(r, "GET", "/obligations?date=20-02-2024", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestObligationHandler_Confirm(t *testing.T) {
	t.Run("returns 201 with the materialized transaction", func(t *testing.T) {
		svc := &mockObligationService{
			confirmFn: func(ruleID string, _ time.Time) (*models.Transaction, error) {
				return &models.Transaction{
					ID:          "tx-1",
					Type:        models.TransactionTypeExpense,
					Category:    "Cơ sở vật chất",
					Amount:      200_000,
					Date:        "2024-02-15",
					IsRecurring: true,
				}, nil
			},
		}
		r := setupObligationRouter(NewObligationHandler(svc))

		rec := doRequest(r, "POST", "/obligations/rule-1/confirm?date=2024-02-20", "")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["date"] != "2024-02-15" {
			t.Errorf("expected due date 2024-02-15, got %v", tx["date"])
		}
	})

	t.Run("returns 404 when rule is unknown", func(t *testing.T) {
		svc := &mockObligationService{
			confirmFn: func(_ string, _ time.Time) (*models.Transaction, error) {
				return nil, apperrors.ErrRuleNotFound
			},
		}
		r := setupObligationRouter(NewObligationHandler(svc))

		rec := doRequest(r, "POST", "/obligations/no-such-rule/confirm", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RULE_NOT_FOUND")
	})

	t.Run("returns 409 when not due", func(t *testing.T) {
		svc := &mockObligationService{
			confirmFn: func(_ string, _ time.Time) (*models.Transaction, error) {
				return nil, apperrors.ErrObligationNotDue
			},
		}
		r := setupObligationRouter(NewObligationHandler(svc))

		rec := doRequest(r, "POST", "/obligations/rule-1/confirm", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "OBLIGATION_NOT_DUE")
	})
}
