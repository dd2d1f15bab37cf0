package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insurewise/policy-portal/internal/models"
	"github.com/insurewise/policy-portal/internal/testhelpers"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 1, NextID([]models.PolicyRecord{}))

	recs := []models.PolicyRecord{
		testhelpers.Holder(4, "A Person", "1990-01-01", ""),
		testhelpers.Holder(11, "B Person", "1990-01-01", ""),
		testhelpers.Holder(2, "C Person", "1990-01-01", ""),
	}
	assert.Equal(t, 12, NextID(recs), "max+1, not len+1")

	recs = append(recs, models.PolicyRecord{HolderName: "no id yet"})
	assert.Equal(t, 12, NextID(recs))
}

func TestBirthYearSuffix(t *testing.T) {
	cases := map[string]string{
		"1995-03-10":           "95",
		"2005-12-31":           "05",
		"2000-01-01":           "00",
		"1899-07-04":           "99",
		"1999-06-15T00:00:00Z": "99",
	}
	for in, want := range cases {
		got, ok := BirthYearSuffix(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "   ", "not-a-date", "10/03/1995"} {
		_, ok := BirthYearSuffix(bad)
		assert.False(t, ok, bad)
	}
}

func TestCountBirthYearSuffixSkipsUnreadableDates(t *testing.T) {
	recs := []models.PolicyRecord{
		testhelpers.Holder(1, "A Person", "1995-03-10", "HF95001"),
		testhelpers.Holder(2, "B Person", "1895-11-02", "HF95002"),
		testhelpers.Holder(3, "C Person", "1996-03-10", "HF96001"),
		testhelpers.Holder(4, "D Person", "", ""),
		testhelpers.Holder(5, "E Person", "garbage", ""),
	}
	assert.Equal(t, 2, CountBirthYearSuffix(recs, "95"))
	assert.Equal(t, 1, CountBirthYearSuffix(recs, "96"))
	assert.Equal(t, 0, CountBirthYearSuffix(recs, "80"))
}

func TestFormatPolicyNumber(t *testing.T) {
	assert.Equal(t, "HF95001", FormatPolicyNumber("95", 1))
	assert.Equal(t, "HF99004", FormatPolicyNumber("99", 4))
	assert.Equal(t, "HF05042", FormatPolicyNumber("05", 42))
	assert.Equal(t, "HF801000", FormatPolicyNumber("80", 1000), "sequence grows past three digits")
}
