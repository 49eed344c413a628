package entities

import "github.com/ethereum/go-ethereum/common"

const (
	// TokensPremiumDivisor is the premium amount (smallest currency unit) that earns one loyalty token.
	TokensPremiumDivisor = 100

	// MinorUnitsPerCurrencyUnit converts ledger amounts to the decimal
	// currency amounts payment providers charge.
	MinorUnitsPerCurrencyUnit = 100
)

// ToCurrencyUnits converts a ledger amount (smallest currency unit) to a
// decimal amount in whole currency units, e.g. 5000 -> 50.00.
func ToCurrencyUnits(minor uint64) float64 {
	return float64(minor) / MinorUnitsPerCurrencyUnit
}

// PolicyInput is the full field set supplied when a policy is created.
//
// Descriptive fields are copied verbatim; the ledger never validates them.
// Monetary fields are expressed in the smallest currency unit.

type PolicyInput struct {
	// Insured
	PolicyholderName      string `json:"policyholder_name"`
	NationalCode          string `json:"national_code"`
	AddressAndPhone       string `json:"address_and_phone"`
	Beneficiary           string `json:"beneficiary"`
	InsurancePolicyNumber string `json:"insurance_policy_number"`
	VehicleValue          uint64 `json:"vehicle_value"`

	// Previous insurance
	ThanksToPreviousInsurance     bool   `json:"thanks_to_previous_insurance"`
	PreviousInsurancePolicyNumber string `json:"previous_insurance_policy_number"`
	PreviousStartDate             string `json:"previous_start_date"`
	PreviousEndDate               string `json:"previous_end_date"`
	PreviousRiskHistory           string `json:"previous_risk_history"`
	AdditionalRiskHistory         string `json:"additional_risk_history"`

	AdditionalCoverage string `json:"additional_coverage"`
	PolicyTerm         string `json:"policy_term"`
	IssuingUnit        string `json:"issuing_unit"`

	// Vehicle
	VehicleType        string `json:"vehicle_type"`
	System             string `json:"system"`
	Cylinder           uint64 `json:"cylinder"`
	EngineNumber       string `json:"engine_number"`
	Plaque             string `json:"plaque"`
	PlateType          string `json:"plate_type"`
	YearOfConstruction uint64 `json:"year_of_construction"`
	Used               bool   `json:"used"`
	ChassisNumber      string `json:"chassis_number"`
	Capacity           uint64 `json:"capacity"`

	PartsAndAccessoriesValue uint64 `json:"parts_and_accessories_value"`
	PrivateConditions        string `json:"private_conditions"`

	Premium        uint64 `json:"premium"`
	CoverageAmount uint64 `json:"coverage_amount"`
}

// Policy is an insured-vehicle record. Only IsActive may change after creation.
type Policy struct {
	ID     uint64         `json:"id"`
	Holder common.Address `json:"holder"`
	PolicyInput
	IsActive bool `json:"is_active"`
}

// CalculateTokens returns the loyalty tokens earned for a premium (floor division).
func CalculateTokens(premium uint64) uint64 {
	return premium / TokensPremiumDivisor
}
