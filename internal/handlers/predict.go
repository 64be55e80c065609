package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/smartinvest/apiserver/internal/model"
	"github.com/smartinvest/apiserver/internal/services"
	"github.com/smartinvest/apiserver/types"
)

// Form widget bounds. These are the only input validation the system
// performs.
const (
	minAge         = 18
	maxAge         = 100
	minCreditScore = 300
	maxCreditScore = 850
)

// PredictHandler provides the risk predictor endpoint.
type PredictHandler struct {
	predictionService *services.PredictionService
}

// NewPredictHandler constructs a handler with the provided service.
func NewPredictHandler(predictionService *services.PredictionService) *PredictHandler {
	return &PredictHandler{predictionService: predictionService}
}

// PredictRouter registers the predictor route on the given router.
// The predictor is for authenticated non-admin users only: admin's
// navigation has the records view instead.
func PredictRouter(r chi.Router, predictionService *services.PredictionService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewPredictHandler(predictionService)

	r.With(authMiddleware, requireNonAdmin).Post("/", handler.Predict)
}

func requireNonAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := usernameFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if services.IsAdmin(username) {
			writeError(w, http.StatusForbidden, "risk predictor is not available to admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Predict scores one submission and returns the risk rating with the
// recommended stock table.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub := req.submission(username)
	result, err := h.predictionService.Predict(r.Context(), sub)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownCategory):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, model.ErrFeatureShape):
			writeError(w, http.StatusInternalServerError, "prediction failed: feature shape mismatch")
		default:
			writeError(w, http.StatusInternalServerError, "prediction failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// PredictRequest mirrors the sixteen fields of the risk predictor form.
type PredictRequest struct {
	Age                 float64 `json:"age"`
	Gender              string  `json:"gender"`
	EducationLevel      string  `json:"education_level"`
	MaritalStatus       string  `json:"marital_status"`
	Income              float64 `json:"income"`
	CreditScore         float64 `json:"credit_score"`
	LoanAmount          float64 `json:"loan_amount"`
	LoanPurpose         string  `json:"loan_purpose"`
	EmploymentStatus    string  `json:"employment_status"`
	YearsAtCurrentJob   float64 `json:"years_at_current_job"`
	PaymentHistory      string  `json:"payment_history"`
	DebtToIncomeRatio   float64 `json:"debt_to_income_ratio"`
	AssetsValue         float64 `json:"assets_value"`
	NumberOfDependents  float64 `json:"number_of_dependents"`
	PreviousDefaults    float64 `json:"previous_defaults"`
	MaritalStatusChange float64 `json:"marital_status_change"`
}

func (r PredictRequest) validate() error {
	if r.Age < minAge || r.Age > maxAge {
		return errors.New("age must be between 18 and 100")
	}
	if r.CreditScore < minCreditScore || r.CreditScore > maxCreditScore {
		return errors.New("credit score must be between 300 and 850")
	}
	return nil
}

func (r PredictRequest) submission(username string) types.Submission {
	return types.Submission{
		Username:            username,
		Age:                 r.Age,
		Gender:              r.Gender,
		EducationLevel:      r.EducationLevel,
		MaritalStatus:       r.MaritalStatus,
		Income:              r.Income,
		CreditScore:         r.CreditScore,
		LoanAmount:          r.LoanAmount,
		LoanPurpose:         r.LoanPurpose,
		EmploymentStatus:    r.EmploymentStatus,
		YearsAtCurrentJob:   r.YearsAtCurrentJob,
		PaymentHistory:      r.PaymentHistory,
		DebtToIncomeRatio:   r.DebtToIncomeRatio,
		AssetsValue:         r.AssetsValue,
		NumberOfDependents:  r.NumberOfDependents,
		PreviousDefaults:    r.PreviousDefaults,
		MaritalStatusChange: r.MaritalStatusChange,
	}
}
