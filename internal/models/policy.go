package models

import "fmt"

// ------------------------------------------------------------------------
// PolicyType enumerates the kinds of cover a record can hold.
// ------------------------------------------------------------------------
type PolicyType string

const (
	PolicyTypeHealth PolicyType = "Health"
	PolicyTypeLife   PolicyType = "Life"
	PolicyTypeAuto   PolicyType = "Auto"
	PolicyTypeHome   PolicyType = "Home"
	PolicyTypeTravel PolicyType = "Travel"
)

// PolicyTypes lists every PolicyType in the order the form offers them.
var PolicyTypes = []PolicyType{
	PolicyTypeHealth,
	PolicyTypeLife,
	PolicyTypeAuto,
	PolicyTypeHome,
	PolicyTypeTravel,
}

func (t PolicyType) Valid() bool {
	for _, known := range PolicyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParsePolicyType converts a raw string to a PolicyType.
func ParsePolicyType(s string) (PolicyType, error) {
	t := PolicyType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid policy type: %q", s)
	}
	return t, nil
}

// ------------------------------------------------------------------------
// PolicyStatus
// ------------------------------------------------------------------------
type PolicyStatus string

const (
	PolicyStatusActive   PolicyStatus = "Active"
	PolicyStatusInactive PolicyStatus = "Inactive"
)

// DefaultPolicyStatus is applied to fresh forms.
const DefaultPolicyStatus = PolicyStatusActive

var PolicyStatuses = []PolicyStatus{
	PolicyStatusActive,
	PolicyStatusInactive,
}

func (s PolicyStatus) Valid() bool {
	return s == PolicyStatusActive || s == PolicyStatusInactive
}

func ParsePolicyStatus(s string) (PolicyStatus, error) {
	st := PolicyStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid policy status: %q", s)
	}
	return st, nil
}

// ------------------------------------------------------------------------
// Records
// ------------------------------------------------------------------------

// PolicyRecord is one insurance entry as held by the remote collection.
// ID and PolicyNumber are zero until the record has been created.
type PolicyRecord struct {
	ID           int          `json:"id,omitempty"`
	PolicyNumber string       `json:"policyNumber,omitempty"`
	HolderName   string       `json:"holderName"`
	DateOfBirth  string       `json:"dateOfBirth"`
	PolicyType   PolicyType   `json:"policyType"`
	Premium      float64      `json:"premium"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	Nominee      string       `json:"nominee"`
	Status       PolicyStatus `json:"status"`
}

// PolicyInput is the caller-supplied part of a record: everything except the
// identifiers, which are derived on create and never change afterwards.
// Premium is nil when no usable amount was supplied.
type PolicyInput struct {
	HolderName  string       `json:"holderName" validate:"required,min=3"`
	DateOfBirth string       `json:"dateOfBirth" validate:"required,isodate"`
	PolicyType  PolicyType   `json:"policyType" validate:"required,oneof=Health Life Auto Home Travel"`
	Premium     *float64     `json:"premium" validate:"required,finite,gte=0.01"`
	StartDate   string       `json:"startDate" validate:"required,isodate"`
	EndDate     string       `json:"endDate" validate:"required,isodate"`
	Nominee     string       `json:"nominee" validate:"required,min=3"`
	Status      PolicyStatus `json:"status" validate:"required,oneof=Active Inactive"`
}

// PremiumOf returns a premium amount suitable for PolicyInput.Premium.
func PremiumOf(v float64) *float64 {
	return &v
}

// Record attaches identifiers to the input. A missing premium is recorded as 0.
func (in PolicyInput) Record(id int, policyNumber string) PolicyRecord {
	var premium float64
	if in.Premium != nil {
		premium = *in.Premium
	}
	return PolicyRecord{
		ID:           id,
		PolicyNumber: policyNumber,
		HolderName:   in.HolderName,
		DateOfBirth:  in.DateOfBirth,
		PolicyType:   in.PolicyType,
		Premium:      premium,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Nominee:      in.Nominee,
		Status:       in.Status,
	}
}

// Input strips the identifiers from r.
func (r PolicyRecord) Input() PolicyInput {
	return PolicyInput{
		HolderName:  r.HolderName,
		DateOfBirth: r.DateOfBirth,
		PolicyType:  r.PolicyType,
		Premium:     PremiumOf(r.Premium),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Nominee:     r.Nominee,
		Status:      r.Status,
	}
}
