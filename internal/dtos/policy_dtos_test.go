package dtos

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurewise/policy-portal/internal/models"
)

func TestPolicyFormFromRequestTrimsValues(t *testing.T) {
	vals := url.Values{
		"holderName":  {"  Jane Doe "},
		"dateOfBirth": {"1995-03-10"},
		"policyType":  {"Health"},
		"premium":     {"120.50"},
		"startDate":   {"2024-01-01"},
		"endDate":     {"2024-12-31"},
		"nominee":     {"John Doe"},
		"status":      {"Active"},
	}
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, req.ParseForm())

	in := PolicyFormFromRequest(req).ToInput()
	assert.Equal(t, "Jane Doe", in.HolderName)
	require.NotNil(t, in.Premium)
	assert.Equal(t, 120.50, *in.Premium)
	assert.Equal(t, models.PolicyTypeHealth, in.PolicyType)
	assert.Equal(t, models.PolicyStatusActive, in.Status)
}

func TestToInputUnusablePremiumIsMissing(t *testing.T) {
	for _, raw := range []string{"", "abc", "Inf", "+Inf", "-Inf", "Infinity", "NaN"} {
		f := NewPolicyForm()
		f.Premium = raw
		assert.Nil(t, f.ToInput().Premium, raw)
	}
	assert.Equal(t, models.PolicyStatusActive, NewPolicyForm().ToInput().Status)
}

func TestToInputKeepsTypedZeroPremium(t *testing.T) {
	f := NewPolicyForm()
	f.Premium = "0"

	in := f.ToInput()
	require.NotNil(t, in.Premium)
	assert.Zero(t, *in.Premium)
}

func TestPolicyFormFromRecordRoundTrip(t *testing.T) {
	in := models.PolicyInput{
		HolderName:  "Jane Doe",
		DateOfBirth: "1995-03-10",
		PolicyType:  models.PolicyTypeLife,
		Premium:     models.PremiumOf(0.01),
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Nominee:     "John Doe",
		Status:      models.PolicyStatusInactive,
	}
	f := PolicyFormFromRecord(in.Record(3, "HF95001"))
	assert.Equal(t, "0.01", f.Premium)
	assert.Equal(t, in, f.ToInput())
}
