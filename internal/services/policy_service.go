package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/insurewise/policy-portal/internal/metrics"
	"github.com/insurewise/policy-portal/internal/models"
	"github.com/insurewise/policy-portal/internal/repositories"
	"github.com/insurewise/policy-portal/internal/utils"
	"github.com/insurewise/policy-portal/internal/validation"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type PolicyService interface {
	FetchAll(ctx context.Context) ([]models.PolicyRecord, error)
	FetchByID(ctx context.Context, id int) (models.PolicyRecord, error)
	Create(ctx context.Context, in models.PolicyInput) (models.PolicyRecord, error)
	Update(ctx context.Context, id int, in models.PolicyInput) (models.PolicyRecord, error)
	Delete(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}

type policyService struct {
	repo repositories.PolicyRepository

	// createMu serialises Create within this process; the collection offers
	// no conditional write, so other writers can still interleave.
	createMu sync.Mutex
}

func NewPolicyService(repo repositories.PolicyRepository) PolicyService {
	return &policyService{repo: repo}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *policyService) FetchAll(ctx context.Context) ([]models.PolicyRecord, error) {
	return s.repo.ListAll(ctx)
}

func (s *policyService) FetchByID(ctx context.Context, id int) (models.PolicyRecord, error) {
	return s.repo.GetByID(ctx, id)
}

/*
Create stores a new policy. The id and policy number are derived here and
never taken from the caller:

 1. nextID      = max(existing ids) + 1, from a full read of the collection
 2. policyNumber = HF + YY + seq, from a second, independent full read
 3. one POST carrying the input plus both identifiers
*/
func (s *policyService) Create(ctx context.Context, in models.PolicyInput) (models.PolicyRecord, error) {
	if err := validation.ValidatePolicy(in); err != nil {
		return models.PolicyRecord{}, err
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	//-----------------------------------------------------------------
	// 1) Next sequential id
	//-----------------------------------------------------------------
	nextID, err := s.nextID(ctx)
	if err != nil {
		return models.PolicyRecord{}, err
	}

	//-----------------------------------------------------------------
	// 2) Policy number for the holder's birth-year suffix
	//-----------------------------------------------------------------
	policyNumber, err := s.generatePolicyNumber(ctx, in.DateOfBirth)
	if err != nil {
		return models.PolicyRecord{}, err
	}

	//-----------------------------------------------------------------
	// 3) Submit
	//-----------------------------------------------------------------
	created, err := s.repo.Create(ctx, in.Record(nextID, policyNumber))
	if err != nil {
		return models.PolicyRecord{}, fmt.Errorf("create policy %s: %w", policyNumber, err)
	}

	metrics.PolicyCreated()
	utils.Logger.WithFields(logrus.Fields{
		"id":            created.ID,
		"policy_number": created.PolicyNumber,
		"request_id":    utils.RequestIDFrom(ctx),
	}).Info("Policy created")
	return created, nil
}

// Update replaces every field of the record at id. The stored policy number is
// read first and sent back unchanged.
func (s *policyService) Update(ctx context.Context, id int, in models.PolicyInput) (models.PolicyRecord, error) {
	if err := validation.ValidatePolicy(in); err != nil {
		return models.PolicyRecord{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.PolicyRecord{}, err
	}

	updated, err := s.repo.Update(ctx, id, in.Record(id, current.PolicyNumber))
	if err != nil {
		return models.PolicyRecord{}, fmt.Errorf("update policy %d: %w", id, err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"id":         id,
		"request_id": utils.RequestIDFrom(ctx),
	}).Info("Policy updated")
	return updated, nil
}

func (s *policyService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete policy %d: %w", id, err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"id":         id,
		"request_id": utils.RequestIDFrom(ctx),
	}).Info("Policy deleted")
	return nil
}

func (s *policyService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

func (s *policyService) nextID(ctx context.Context) (int, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("compute next id: %w", err)
	}
	return NextID(records), nil
}

func (s *policyService) generatePolicyNumber(ctx context.Context, dateOfBirth string) (string, error) {
	suffix, ok := BirthYearSuffix(dateOfBirth)
	if !ok {
		// ValidatePolicy has already rejected unreadable dates.
		return "", fmt.Errorf("generate policy number: unreadable date of birth %q", dateOfBirth)
	}

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("generate policy number: %w", err)
	}
	return FormatPolicyNumber(suffix, CountBirthYearSuffix(records, suffix)+1), nil
}
