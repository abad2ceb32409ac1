package integration

import (
	"net/http"
	"testing"
	"time"

	"daywise/internal/models"
	"daywise/internal/testutil"
	"daywise/internal/types"
)

func TestSummaryFlow_CurrentMonth(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "summary@test.com", "password123")

	app.createTransaction(t, token, "income", "1000.00", "Salary", "")
	app.createTransaction(t, token, "expense", "250.50", "Groceries", "Food")

	rec := app.request("GET", "/api/v1/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	assertDecimalField(t, summary, "total_income", "1000.00")
	assertDecimalField(t, summary, "total_expenses", "250.50")
	assertDecimalField(t, summary, "balance", "749.50")

	current := types.MonthOf(time.Now()).String()
	if summary["month"] != current {
		t.Errorf("expected month %s, got %v", current, summary["month"])
	}
	if summary["is_current"] != true {
		t.Error("expected is_current true for default summary")
	}
	if transactions := summary["transactions"].([]interface{}); len(transactions) != 2 {
		t.Errorf("expected 2 transactions in summary, got %d", len(transactions))
	}

	// Navigation fields: backward always, forward absent at the current month
	if summary["previous_month"] != types.MonthOf(time.Now()).AddDate(0, -1).String() {
		t.Errorf("expected previous_month one month back, got %v", summary["previous_month"])
	}
	if _, present := summary["next_month"]; present {
		t.Errorf("expected next_month to be omitted at the current month, got %v", summary["next_month"])
	}
}

func TestSummaryFlow_ExplicitPastMonth(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "pastmonth@test.com", "password123")

	lastMonth := types.MonthOf(time.Now()).AddDate(0, -1)
	testutil.CreateTestTransactionOn(t, app.DB, userID, models.TransactionTypeIncome, "500.00", time.Time(lastMonth))
	app.createTransaction(t, token, "income", "100.00", "Salary", "")

	rec := app.request("GET", "/api/v1/summary?month="+lastMonth.String(), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	if summary["month"] != lastMonth.String() {
		t.Errorf("expected month %s, got %v", lastMonth, summary["month"])
	}
	assertDecimalField(t, summary, "total_income", "500.00")
	if summary["is_current"] != false {
		t.Error("expected is_current false for past month")
	}
	if summary["next_month"] != types.MonthOf(time.Now()).String() {
		t.Errorf("expected next_month to point at the current month, got %v", summary["next_month"])
	}
}

func TestSummaryFlow_FutureMonthClamped(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "future@test.com", "password123")

	app.createTransaction(t, token, "income", "75.00", "Salary", "")

	future := types.MonthOf(time.Now()).AddDate(0, 2)
	rec := app.request("GET", "/api/v1/summary?month="+future.String(), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	current := types.MonthOf(time.Now()).String()
	if summary["month"] != current {
		t.Errorf("expected clamp to %s, got %v", current, summary["month"])
	}
	if summary["is_current"] != true {
		t.Error("expected clamped summary to be flagged current")
	}
	assertDecimalField(t, summary, "total_income", "75.00")
}

func TestSummaryFlow_InvalidMonth(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "badmonth@test.com", "password123")

	rec := app.request("GET", "/api/v1/summary?month=2025-13", "", token)
	assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
}

func TestSummaryFlow_EmptyMonth(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "empty@test.com", "password123")

	rec := app.request("GET", "/api/v1/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	assertDecimalField(t, summary, "total_income", "0")
	assertDecimalField(t, summary, "total_expenses", "0")
	assertDecimalField(t, summary, "balance", "0")
	if transactions := summary["transactions"].([]interface{}); len(transactions) != 0 {
		t.Errorf("expected empty transactions, got %d", len(transactions))
	}
}

func TestHistoryFlow_GroupsByMonth(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "history@test.com", "password123")

	current := types.MonthOf(time.Now())
	testutil.CreateTestTransactionOn(t, app.DB, userID, models.TransactionTypeIncome, "10.00", time.Time(current.AddDate(0, -2)))
	testutil.CreateTestTransactionOn(t, app.DB, userID, models.TransactionTypeExpense, "20.00", time.Time(current.AddDate(0, -1)))
	app.createTransaction(t, token, "income", "30.00", "Salary", "")

	rec := app.request("GET", "/api/v1/history", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("history failed: %d %s", rec.Code, rec.Body.String())
	}
	history := parseJSON(t, rec)["history"].([]interface{})

	if len(history) != 3 {
		t.Fatalf("expected 3 month groups, got %d", len(history))
	}

	newest := history[0].(map[string]interface{})
	if newest["month"] != current.String() {
		t.Errorf("expected newest group %s, got %v", current, newest["month"])
	}
	assertDecimalField(t, newest, "total_income", "30.00")

	middle := history[1].(map[string]interface{})
	if middle["month"] != current.AddDate(0, -1).String() {
		t.Errorf("expected middle group %s, got %v", current.AddDate(0, -1), middle["month"])
	}
	assertDecimalField(t, middle, "total_expenses", "20.00")
	assertDecimalField(t, middle, "balance", "-20.00")

	oldest := history[2].(map[string]interface{})
	assertDecimalField(t, oldest, "total_income", "10.00")
}

func TestHistoryFlow_EmptyForNewUser(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "nohistory@test.com", "password123")

	rec := app.request("GET", "/api/v1/history", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("history failed: %d %s", rec.Code, rec.Body.String())
	}
	history := parseJSON(t, rec)["history"].([]interface{})
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d groups", len(history))
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["status"] != "ok" {
		t.Error("expected status ok")
	}
}
