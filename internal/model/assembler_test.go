package model

import (
	"errors"
	"testing"

	"github.com/smartinvest/apiserver/types"
)

func testEncoder() *LabelEncoder {
	return &LabelEncoder{
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

func testSubmission() types.Submission {
	return types.Submission{
		Username:            "ayesha",
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

func TestAssemble_MatchesColumnOrder(t *testing.T) {
	columns := []string{types.ColCreditScore, types.ColAge, types.ColGender, types.ColIncome}
	assembler := NewFeatureAssembler(columns, testEncoder())

	vector, err := assembler.Assemble(testSubmission())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(vector) != len(columns) {
		t.Fatalf("vector length = %d, want %d", len(vector), len(columns))
	}
	// Credit Score, Age, Gender ("Male" -> 1), Income, in that order.
	want := []float64{688, 49, 1, 72799}
	for i := range want {
		if vector[i] != want[i] {
			t.Fatalf("vector[%d] = %v, want %v", i, vector[i], want[i])
		}
	}
}

func TestAssemble_MissingColumnDefaultsToZero(t *testing.T) {
	// "Credit Utilization" was in the training data but is not collected
	// by the form; it must be synthesized as 0.
	columns := []string{types.ColAge, "Credit Utilization", types.ColIncome}
	assembler := NewFeatureAssembler(columns, testEncoder())

	vector, err := assembler.Assemble(testSubmission())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if vector[1] != 0 {
		t.Fatalf("missing column encoded as %v, want 0", vector[1])
	}
	if vector[0] != 49 || vector[2] != 72799 {
		t.Fatalf("unexpected vector %v", vector)
	}
}

func TestAssemble_CategoricalEncodingIsStableAcrossRequests(t *testing.T) {
	columns := []string{types.ColPaymentHistory}
	assembler := NewFeatureAssembler(columns, testEncoder())

	sub := testSubmission()
	sub.PaymentHistory = "Poor"
	poor, err := assembler.Assemble(sub)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	sub.PaymentHistory = "Excellent"
	excellent, err := assembler.Assemble(sub)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if poor[0] == excellent[0] {
		t.Fatalf("different categories encoded to the same code %v", poor[0])
	}
	if poor[0] != 2 || excellent[0] != 0 {
		t.Fatalf("codes = %v/%v, want 2/0 from the persisted vocabulary", poor[0], excellent[0])
	}
}

func TestAssemble_UnknownCategoryFails(t *testing.T) {
	columns := []string{types.ColGender}
	assembler := NewFeatureAssembler(columns, testEncoder())

	sub := testSubmission()
	sub.Gender = "Unspecified"
	if _, err := assembler.Assemble(sub); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
