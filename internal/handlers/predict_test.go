package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/smartinvest/apiserver/internal/model"
	"github.com/smartinvest/apiserver/internal/predlog"
	"github.com/smartinvest/apiserver/internal/services"
	"github.com/smartinvest/apiserver/internal/store"
	"github.com/smartinvest/apiserver/types"
)

// predictionResponse mirrors the wire shape of services.PredictionResult;
// RiskCategory marshals to a string, so the struct itself cannot be decoded.
type predictionResponse struct {
	Category        string                    `json:"category"`
	DisplayLabel    string                    `json:"display_label"`
	Advice          string                    `json:"advice"`
	Recommendations []types.RecommendationRow `json:"recommendations"`
	TopSymbols      string                    `json:"top_symbols"`
}

// stubClassifier always predicts the same category, standing in for the
// pretrained artifacts.
type stubClassifier struct {
	category types.RiskCategory
}

func (s stubClassifier) Predict([]float64) (types.RiskCategory, error) {
	return s.category, nil
}

func testColumnOrder() []string {
	return []string{
		types.ColAge,
		types.ColGender,
		types.ColEducationLevel,
		types.ColMaritalStatus,
		types.ColIncome,
		types.ColCreditScore,
		types.ColLoanAmount,
		types.ColLoanPurpose,
		types.ColEmploymentStatus,
		types.ColYearsAtCurrentJob,
		types.ColPaymentHistory,
		types.ColDebtToIncomeRatio,
		types.ColAssetsValue,
		types.ColNumberOfDependents,
		types.ColPreviousDefaults,
		types.ColMaritalStatusChange,
	}
}

func testLabelEncoder() *model.LabelEncoder {
	return &model.LabelEncoder{
		TargetClasses: []string{"Low", "Medium", "High"},
		Columns: map[string][]string{
			types.ColGender:           {"Female", "Male", "Non-binary"},
			types.ColEducationLevel:   {"Bachelor's", "Master's", "Other", "PhD"},
			types.ColMaritalStatus:    {"Divorced", "Married", "Single", "Widowed"},
			types.ColLoanPurpose:      {"Auto", "Business", "Home", "Personal"},
			types.ColEmploymentStatus: {"Employed", "Unemployed"},
			types.ColPaymentHistory:   {"Excellent", "Fair", "Poor"},
		},
	}
}

// newAdvisorRouter wires the predictor and records routes against a stub
// classifier and a temp-dir prediction log, mirroring the server wiring.
func newAdvisorRouter(t *testing.T, category types.RiskCategory) (*chi.Mux, *predlog.Log) {
	t.Helper()

	userService := services.NewUserService(store.NewMemoryUserRepository())
	if err := userService.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	assembler := model.NewFeatureAssembler(testColumnOrder(), testLabelEncoder())
	predictionLog := predlog.NewLog(filepath.Join(t.TempDir(), "investor_data.csv"))
	predictionService := services.NewPredictionService(assembler, stubClassifier{category: category}, predictionLog, nil, "")

	authMiddleware := RequireAuth(testJWTSecret)
	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		AuthRouter(r, userService, testJWTSecret)
	})
	router.Route("/predict", func(r chi.Router) {
		PredictRouter(r, predictionService, authMiddleware)
	})
	router.Route("/records", func(r chi.Router) {
		RecordsRouter(r, predictionService, authMiddleware)
	})
	return router, predictionLog
}

func defaultPredictRequest() PredictRequest {
	return PredictRequest{
		Age:                 49,
		Gender:              "Male",
		EducationLevel:      "PhD",
		MaritalStatus:       "Single",
		Income:              72799,
		CreditScore:         688,
		LoanAmount:          45713,
		LoanPurpose:         "Business",
		EmploymentStatus:    "Employed",
		YearsAtCurrentJob:   6,
		PaymentHistory:      "Poor",
		DebtToIncomeRatio:   0.15,
		AssetsValue:         120228,
		NumberOfDependents:  0,
		PreviousDefaults:    2,
		MaritalStatusChange: 2,
	}
}

func registerAndLogin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()
	rec := postJSON(t, router, "/auth/register", RegisterRequest{Username: username, Password: password}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, rec.Code, rec.Body.String())
	}
	return login(t, router, username, password)
}

func TestPredict_LowRiskGetsHighGrowthTableAndLogsRow(t *testing.T) {
	router, predictionLog := newAdvisorRouter(t, types.RiskLow)
	token := registerAndLogin(t, router, "ayesha", "pw")

	rec := postJSON(t, router, "/predict", defaultPredictRequest(), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("predict: status %d, body %s", rec.Code, rec.Body.String())
	}

	var result predictionResponse
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.DisplayLabel != "🟢 Low" {
		t.Fatalf("display label = %q, want 🟢 Low", result.DisplayLabel)
	}
	// Counter-strategy: the low-risk investor gets the high-growth table.
	if len(result.Recommendations) != 15 || result.Recommendations[0].StockSymbol != "ACIFORMULA" {
		t.Fatalf("unexpected recommendations: %+v", result.Recommendations)
	}
	wantTop := "ACIFORMULA, 03.Ceramics_Sector, ALARABANK, ACI, AIBL1STIMF"
	if result.TopSymbols != wantTop {
		t.Fatalf("top symbols = %q, want %q", result.TopSymbols, wantTop)
	}

	records, err := predictionLog.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("log has %d records, want 1", len(records))
	}
	logged := records[0]
	if logged.Submission.Username != "ayesha" {
		t.Fatalf("logged username = %q", logged.Submission.Username)
	}
	if logged.PredictedRisk != "🟢 Low" {
		t.Fatalf("logged risk = %q, want 🟢 Low", logged.PredictedRisk)
	}
	if logged.RecommendedStocks != wantTop {
		t.Fatalf("logged stocks = %q, want %q", logged.RecommendedStocks, wantTop)
	}
}

func TestPredict_HighRiskGetsLowProfileTable(t *testing.T) {
	router, _ := newAdvisorRouter(t, types.RiskHigh)
	token := registerAndLogin(t, router, "rafi", "pw")

	rec := postJSON(t, router, "/predict", defaultPredictRequest(), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("predict: status %d, body %s", rec.Code, rec.Body.String())
	}
	var result predictionResponse
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].StockSymbol != "12.Mutual_Funds" {
		t.Fatalf("high-risk recommendations = %+v, want the low-profile table", result.Recommendations)
	}
}

func TestPredict_GatedByRole(t *testing.T) {
	router, _ := newAdvisorRouter(t, types.RiskMedium)

	// Unauthenticated.
	rec := postJSON(t, router, "/predict", defaultPredictRequest(), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated predict: status %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	// Admin's navigation has the records view instead of the predictor.
	adminToken := login(t, router, "admin", "admin123")
	rec = postJSON(t, router, "/predict", defaultPredictRequest(), adminToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("admin predict: status %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestPredict_ValidatesFormBounds(t *testing.T) {
	router, _ := newAdvisorRouter(t, types.RiskMedium)
	token := registerAndLogin(t, router, "nadia", "pw")

	req := defaultPredictRequest()
	req.Age = 17
	if rec := postJSON(t, router, "/predict", req, token); rec.Code != http.StatusBadRequest {
		t.Fatalf("underage predict: status %d, want %d", rec.Code, http.StatusBadRequest)
	}

	req = defaultPredictRequest()
	req.CreditScore = 900
	if rec := postJSON(t, router, "/predict", req, token); rec.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range credit score: status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPredict_UnknownCategoryIsUnprocessable(t *testing.T) {
	router, _ := newAdvisorRouter(t, types.RiskMedium)
	token := registerAndLogin(t, router, "nadia", "pw")

	req := defaultPredictRequest()
	req.Gender = "Unspecified"
	rec := postJSON(t, router, "/predict", req, token)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown category: status %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestRecords_AdminOnly(t *testing.T) {
	router, _ := newAdvisorRouter(t, types.RiskMedium)
	userToken := registerAndLogin(t, router, "ayesha", "pw")

	// Log one prediction first.
	if rec := postJSON(t, router, "/predict", defaultPredictRequest(), userToken); rec.Code != http.StatusOK {
		t.Fatalf("predict: status %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin records: status %d, want %d", rec.Code, http.StatusForbidden)
	}

	adminToken := login(t, router, "admin", "admin123")
	req = httptest.NewRequest(http.MethodGet, "/records", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin records: status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp RecordsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("records total = %d (%d items), want 1", resp.Total, len(resp.Items))
	}
	if resp.Items[0].PredictedRisk != "🟡 Medium" {
		t.Fatalf("logged risk = %q, want 🟡 Medium", resp.Items[0].PredictedRisk)
	}
}

func TestRecords_EmptyLogIsNoRecords(t *testing.T) {
	router, _ := newAdvisorRouter(t, types.RiskMedium)
	adminToken := login(t, router, "admin", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("records on empty log: status %d", rec.Code)
	}
	var resp RecordsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if resp.Total != 0 {
		t.Fatalf("records total = %d, want 0", resp.Total)
	}
}
