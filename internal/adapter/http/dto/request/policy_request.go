package request

import "carbody_insurance/internal/domain/entities"

// PolicyCreateRequest is the payload for POST /v1/policies.
//
// Every field is optional and copied verbatim into the policy. Monetary
// values are in the smallest currency unit.
type PolicyCreateRequest struct {
	PolicyholderName      string `json:"policyholder_name"`
	NationalCode          string `json:"national_code"`
	AddressAndPhone       string `json:"address_and_phone"`
	Beneficiary           string `json:"beneficiary"`
	InsurancePolicyNumber string `json:"insurance_policy_number"`
	VehicleValue          uint64 `json:"vehicle_value"`

	ThanksToPreviousInsurance     bool   `json:"thanks_to_previous_insurance"`
	PreviousInsurancePolicyNumber string `json:"previous_insurance_policy_number"`
	PreviousStartDate             string `json:"previous_start_date"`
	PreviousEndDate               string `json:"previous_end_date"`
	PreviousRiskHistory           string `json:"previous_risk_history"`
	AdditionalRiskHistory         string `json:"additional_risk_history"`

	AdditionalCoverage string `json:"additional_coverage"`
	PolicyTerm         string `json:"policy_term"`
	IssuingUnit        string `json:"issuing_unit"`

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

func (r PolicyCreateRequest) ToPolicyInput() entities.PolicyInput {
	return entities.PolicyInput{
		PolicyholderName:              r.PolicyholderName,
		NationalCode:                  r.NationalCode,
		AddressAndPhone:               r.AddressAndPhone,
		Beneficiary:                   r.Beneficiary,
		InsurancePolicyNumber:         r.InsurancePolicyNumber,
		VehicleValue:                  r.VehicleValue,
		ThanksToPreviousInsurance:     r.ThanksToPreviousInsurance,
		PreviousInsurancePolicyNumber: r.PreviousInsurancePolicyNumber,
		PreviousStartDate:             r.PreviousStartDate,
		PreviousEndDate:               r.PreviousEndDate,
		PreviousRiskHistory:           r.PreviousRiskHistory,
		AdditionalRiskHistory:         r.AdditionalRiskHistory,
		AdditionalCoverage:            r.AdditionalCoverage,
		PolicyTerm:                    r.PolicyTerm,
		IssuingUnit:                   r.IssuingUnit,
		VehicleType:                   r.VehicleType,
		System:                        r.System,
		Cylinder:                      r.Cylinder,
		EngineNumber:                  r.EngineNumber,
		Plaque:                        r.Plaque,
		PlateType:                     r.PlateType,
		YearOfConstruction:            r.YearOfConstruction,
		Used:                          r.Used,
		ChassisNumber:                 r.ChassisNumber,
		Capacity:                      r.Capacity,
		PartsAndAccessoriesValue:      r.PartsAndAccessoriesValue,
		PrivateConditions:             r.PrivateConditions,
		Premium:                       r.Premium,
		CoverageAmount:                r.CoverageAmount,
	}
}
