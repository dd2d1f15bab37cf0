package testhelpers

import "github.com/insurewise/policy-portal/internal/models"

// JaneDoe is the canonical valid input used across the test suites.
func JaneDoe() models.PolicyInput {
	return models.PolicyInput{
		HolderName:  "Jane Doe",
		DateOfBirth: "1995-03-10",
		PolicyType:  models.PolicyTypeHealth,
		Premium:     models.PremiumOf(120.50),
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		Nominee:     "John Doe",
		Status:      models.PolicyStatusActive,
	}
}

// Holder returns a stored record with the given id, holder and birth date.
func Holder(id int, name, dob, policyNumber string) models.PolicyRecord {
	in := JaneDoe()
	in.HolderName = name
	in.DateOfBirth = dob
	return in.Record(id, policyNumber)
}
