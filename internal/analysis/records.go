package analysis

import "encoding/json"

// MortgageRecord holds one year of the ownership schedule.
type MortgageRecord struct {
	Year                      int     `json:"year"`
	MonthlyPayment            float64 `json:"monthlyPayment"`
	PrincipalPaid             float64 `json:"principalPaid"`
	InterestPaid              float64 `json:"interestPaid"`
	DeductibleInterest        float64 `json:"deductibleInterest"`
	InterestTaxSavings        float64 `json:"interestTaxSavings"`
	TotalPrincipalAndInterest float64 `json:"totalPrincipalAndInterest"`
	PropertyTax               float64 `json:"propertyTax"`
	RemainingBalance          float64 `json:"remainingBalance"`
	HomeValue                 float64 `json:"homeValue"`
}

// RentRecordKind tags the variant of a RentRecord.
type RentRecordKind string

const (
	// RentRecordBasic is emitted when stock investing is disabled.
	RentRecordBasic RentRecordKind = "basic"
	// RentRecordInvested carries investment values.
	RentRecordInvested RentRecordKind = "invested"
)

// RentYear holds the rent figures shared by every rent record.
type RentYear struct {
	Year        int     `json:"year"`
	MonthlyRent float64 `json:"monthlyRent"`
	AnnualRent  float64 `json:"annualRent"`
	// EMIRentDiff is the monthly payment minus the monthly rent. Negative
	// when rent exceeds the mortgage payment.
	EMIRentDiff       float64 `json:"emiRentDiff"`
	AnnualEMIRentDiff float64 `json:"annualEmiRentDiff"`
}

// RentRecord is one year of the rent/invest schedule. It is either a
// BasicRentRecord or an InvestedRentRecord; consumers type-switch on it.
type RentRecord interface {
	Base() RentYear
	Kind() RentRecordKind
	isRentRecord()
}

// BasicRentRecord is a rent year without investment tracking.
type BasicRentRecord struct {
	RentYear
}

// Base returns the shared rent figures.
func (r BasicRentRecord) Base() RentYear { return r.RentYear }

// Kind returns RentRecordBasic.
func (r BasicRentRecord) Kind() RentRecordKind { return RentRecordBasic }

func (BasicRentRecord) isRentRecord() {}

// MarshalJSON adds the variant tag.
func (r BasicRentRecord) MarshalJSON() ([]byte, error) {
	type plain BasicRentRecord
	return json.Marshal(struct {
		Kind RentRecordKind `json:"kind"`
		plain
	}{r.Kind(), plain(r)})
}

// InvestedRentRecord is a rent year with the value of the invested down
// payment and of the accumulated EMI-rent contributions.
type InvestedRentRecord struct {
	RentYear
	// Contribution is the positive annual differential invested this year.
	Contribution           float64 `json:"contribution"`
	DownPaymentValue       float64 `json:"downPaymentValue"`
	EMIDiffInvestmentValue float64 `json:"emiDiffInvestmentValue"`
	TotalInvestmentValue   float64 `json:"totalInvestmentValue"`
}

// Base returns the shared rent figures.
func (r InvestedRentRecord) Base() RentYear { return r.RentYear }

// Kind returns RentRecordInvested.
func (r InvestedRentRecord) Kind() RentRecordKind { return RentRecordInvested }

func (InvestedRentRecord) isRentRecord() {}

// MarshalJSON adds the variant tag.
func (r InvestedRentRecord) MarshalJSON() ([]byte, error) {
	type plain InvestedRentRecord
	return json.Marshal(struct {
		Kind RentRecordKind `json:"kind"`
		plain
	}{r.Kind(), plain(r)})
}
