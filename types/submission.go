package types

import "encoding/json"

// Submission represents one investor form submission: the personal and
// financial attributes the risk model was trained on, plus the submitting
// username. It is constructed per request and consumed immediately by the
// feature assembler.
type Submission struct {
	// Username identifies the submitting account. It is recorded in the
	// prediction log but is never a model feature.
	Username string `json:"username"`

	// Age of the investor in years (form range 18-100).
	Age float64 `json:"age"`

	// Gender is a categorical field (e.g. "Male", "Female", "Non-binary").
	Gender string `json:"gender"`

	// EducationLevel is a categorical field (e.g. "PhD", "Master's").
	EducationLevel string `json:"education_level"`

	// MaritalStatus is a categorical field (e.g. "Single", "Married").
	MaritalStatus string `json:"marital_status"`

	// Income is the investor's annual income.
	Income float64 `json:"income"`

	// CreditScore is the investor's credit score (form range 300-850).
	CreditScore float64 `json:"credit_score"`

	// LoanAmount is the outstanding loan principal.
	LoanAmount float64 `json:"loan_amount"`

	// LoanPurpose is a categorical field (e.g. "Business", "Personal").
	LoanPurpose string `json:"loan_purpose"`

	// EmploymentStatus is a categorical field ("Employed", "Unemployed").
	EmploymentStatus string `json:"employment_status"`

	// YearsAtCurrentJob is the tenure at the current employer in years.
	YearsAtCurrentJob float64 `json:"years_at_current_job"`

	// PaymentHistory is a categorical field ("Poor", "Fair", "Excellent").
	PaymentHistory string `json:"payment_history"`

	// DebtToIncomeRatio is the investor's debt-to-income ratio.
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio"`

	// AssetsValue is the total value of the investor's assets.
	AssetsValue float64 `json:"assets_value"`

	// NumberOfDependents is the count of financial dependents.
	NumberOfDependents float64 `json:"number_of_dependents"`

	// PreviousDefaults is the count of prior loan defaults.
	PreviousDefaults float64 `json:"previous_defaults"`

	// MaritalStatusChange counts recent marital status changes.
	MaritalStatusChange float64 `json:"marital_status_change"`
}

// Column names as they appear in the reference column ordering and the
// prediction log header. The model artifacts were produced against these
// exact names.
const (
	ColUsername            = "Username"
	ColAge                 = "Age"
	ColGender              = "Gender"
	ColEducationLevel      = "Education Level"
	ColMaritalStatus       = "Marital Status"
	ColIncome              = "Income"
	ColCreditScore         = "Credit Score"
	ColLoanAmount          = "Loan Amount"
	ColLoanPurpose         = "Loan Purpose"
	ColEmploymentStatus    = "Employment Status"
	ColYearsAtCurrentJob   = "Years at Current Job"
	ColPaymentHistory      = "Payment History"
	ColDebtToIncomeRatio   = "Debt-to-Income Ratio"
	ColAssetsValue         = "Assets Value"
	ColNumberOfDependents  = "Number of Dependents"
	ColPreviousDefaults    = "Previous Defaults"
	ColMaritalStatusChange = "Marital Status Change"
)

// SubmissionColumns is the canonical column order of a logged submission:
// Username first, then the sixteen model fields in form order.
var SubmissionColumns = []string{
	ColUsername,
	ColAge,
	ColGender,
	ColEducationLevel,
	ColMaritalStatus,
	ColIncome,
	ColCreditScore,
	ColLoanAmount,
	ColLoanPurpose,
	ColEmploymentStatus,
	ColYearsAtCurrentJob,
	ColPaymentHistory,
	ColDebtToIncomeRatio,
	ColAssetsValue,
	ColNumberOfDependents,
	ColPreviousDefaults,
	ColMaritalStatusChange,
}

// FeatureValue is a single named feature of a submission, either numeric
// or categorical text.
type FeatureValue struct {
	Number float64
	Text   string
	IsText bool
}

// Features returns the submission's model fields keyed by column name.
// Username is excluded: it is never a model feature.
func (s Submission) Features() map[string]FeatureValue {
	num := func(v float64) FeatureValue { return FeatureValue{Number: v} }
	text := func(v string) FeatureValue { return FeatureValue{Text: v, IsText: true} }

	return map[string]FeatureValue{
		ColAge:                 num(s.Age),
		ColGender:              text(s.Gender),
		ColEducationLevel:      text(s.EducationLevel),
		ColMaritalStatus:       text(s.MaritalStatus),
		ColIncome:              num(s.Income),
		ColCreditScore:         num(s.CreditScore),
		ColLoanAmount:          num(s.LoanAmount),
		ColLoanPurpose:         text(s.LoanPurpose),
		ColEmploymentStatus:    text(s.EmploymentStatus),
		ColYearsAtCurrentJob:   num(s.YearsAtCurrentJob),
		ColPaymentHistory:      text(s.PaymentHistory),
		ColDebtToIncomeRatio:   num(s.DebtToIncomeRatio),
		ColAssetsValue:         num(s.AssetsValue),
		ColNumberOfDependents:  num(s.NumberOfDependents),
		ColPreviousDefaults:    num(s.PreviousDefaults),
		ColMaritalStatusChange: num(s.MaritalStatusChange),
	}
}

// RiskCategory represents the classifier's three-way risk rating.
type RiskCategory int

// Supported risk categories. The integer values match the class ids the
// classifier was trained with.
const (
	// RiskLow indicates a low-risk investor profile.
	RiskLow RiskCategory = iota

	// RiskMedium indicates a medium-risk investor profile.
	RiskMedium

	// RiskHigh indicates a high-risk investor profile.
	RiskHigh
)

// String returns the plain category name.
func (c RiskCategory) String() string {
	switch c {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// DisplayLabel returns the user-facing label recorded in the prediction
// log. This fixed mapping is the presentation source of truth; the label
// encoder artifact carries its own class list, which is verified against
// this one at startup.
func (c RiskCategory) DisplayLabel() string {
	switch c {
	case RiskLow:
		return "🟢 Low"
	case RiskMedium:
		return "🟡 Medium"
	case RiskHigh:
		return "🔴 High"
	default:
		return "Unknown"
	}
}

func (c RiskCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
