package dtos

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/insurewise/policy-portal/internal/models"
)

// PolicyForm is the mutable draft behind the create and edit pages. Values are
// kept exactly as typed so a rejected submission re-renders unchanged.
type PolicyForm struct {
	HolderName  string
	DateOfBirth string
	PolicyType  string
	Premium     string
	StartDate   string
	EndDate     string
	Nominee     string
	Status      string
}

// NewPolicyForm returns an empty draft with the default status.
func NewPolicyForm() PolicyForm {
	return PolicyForm{Status: string(models.DefaultPolicyStatus)}
}

// PolicyFormFromRequest reads a submitted form. r.ParseForm must succeed first.
func PolicyFormFromRequest(r *http.Request) PolicyForm {
	get := func(k string) string { return strings.TrimSpace(r.PostFormValue(k)) }
	return PolicyForm{
		HolderName:  get("holderName"),
		DateOfBirth: get("dateOfBirth"),
		PolicyType:  get("policyType"),
		Premium:     get("premium"),
		StartDate:   get("startDate"),
		EndDate:     get("endDate"),
		Nominee:     get("nominee"),
		Status:      get("status"),
	}
}

// PolicyFormFromRecord prefills the edit page.
func PolicyFormFromRecord(rec models.PolicyRecord) PolicyForm {
	return PolicyForm{
		HolderName:  rec.HolderName,
		DateOfBirth: rec.DateOfBirth,
		PolicyType:  string(rec.PolicyType),
		Premium:     strconv.FormatFloat(rec.Premium, 'f', -1, 64),
		StartDate:   rec.StartDate,
		EndDate:     rec.EndDate,
		Nominee:     rec.Nominee,
		Status:      string(rec.Status),
	}
}

// ToInput freezes the draft. Premium text that is empty, non-numeric or not a
// finite number leaves Premium nil, which validation reports as required.
func (f PolicyForm) ToInput() models.PolicyInput {
	return models.PolicyInput{
		HolderName:  f.HolderName,
		DateOfBirth: f.DateOfBirth,
		PolicyType:  models.PolicyType(f.PolicyType),
		Premium:     parsePremium(f.Premium),
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Nominee:     f.Nominee,
		Status:      models.PolicyStatus(f.Status),
	}
}

func parsePremium(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// ---------------------------------------------------------------------------
// Page models
// ---------------------------------------------------------------------------

type PolicyListPage struct {
	Policies       []models.PolicyRecord
	ErrorMessage   string
	DeleteMessage  string
	DeleteNoticeMS int64
}

type PolicyFormPage struct {
	Title          string
	Action         string
	SubmitLabel    string
	IsEdit         bool
	PolicyID       int
	Loaded         bool
	Form           PolicyForm
	FieldErrors    map[string]string
	SuccessMessage string
	ErrorMessage   string
	RedirectTo     string
	RedirectAfter  float64
	PolicyTypes    []models.PolicyType
	StatusOptions  []models.PolicyStatus
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
