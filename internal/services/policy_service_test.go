package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurewise/policy-portal/internal/models"
	"github.com/insurewise/policy-portal/internal/repositories"
	"github.com/insurewise/policy-portal/internal/testhelpers"
	"github.com/insurewise/policy-portal/internal/utils"
)

func newService(t *testing.T, seed ...models.PolicyRecord) (PolicyService, *testhelpers.CollectionStore) {
	t.Helper()
	store := testhelpers.NewCollectionStore(t, seed...)
	repo := repositories.NewPolicyRepository(store.URL(), 5*time.Second)
	return NewPolicyService(repo), store
}

// -----------------------------------------------------------------------------
// Create
// -----------------------------------------------------------------------------

func TestCreateOnEmptyStore(t *testing.T) {
	svc, store := newService(t)

	got, err := svc.Create(context.Background(), testhelpers.JaneDoe())
	require.NoError(t, err)

	want := testhelpers.JaneDoe().Record(1, "HF95001")
	assert.Equal(t, want, got)
	assert.Equal(t, []models.PolicyRecord{want}, store.Records())
}

func TestCreateReadsTwiceThenPostsOnce(t *testing.T) {
	svc, store := newService(t)

	_, err := svc.Create(context.Background(), testhelpers.JaneDoe())
	require.NoError(t, err)

	reqs := store.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, http.MethodGet, reqs[1].Method)
	assert.Equal(t, http.MethodPost, reqs[2].Method)
	for _, r := range reqs {
		assert.Equal(t, "/insurances", r.Path)
	}
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	svc, _ := newService(t,
		testhelpers.Holder(3, "A Person", "1980-01-01", "HF80001"),
		testhelpers.Holder(17, "B Person", "1981-01-01", "HF81001"),
		testhelpers.Holder(8, "C Person", "1982-01-01", "HF82001"),
	)

	got, err := svc.Create(context.Background(), testhelpers.JaneDoe())
	require.NoError(t, err)
	assert.Equal(t, 18, got.ID)
	assert.Equal(t, "HF95001", got.PolicyNumber)
}

func TestCreateSequencesPerBirthYearSuffix(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	dobs := []string{"1999-01-01", "1999-05-05", "1985-02-02", "1899-12-31", "1999-07-07"}
	want := []string{"HF99001", "HF99002", "HF85001", "HF99003", "HF99004"}

	for i, dob := range dobs {
		in := testhelpers.JaneDoe()
		in.DateOfBirth = dob
		got, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, i+1, got.ID)
		assert.Equal(t, want[i], got.PolicyNumber)
	}
}

func TestCreateRejectsInvalidInputBeforeAnyRequest(t *testing.T) {
	svc, store := newService(t)

	in := testhelpers.JaneDoe()
	in.StartDate, in.EndDate = "2024-06-01", "2024-01-01"

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrValidation))

	var verr *utils.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "dateInvalid", verr.Code("endDate"))

	assert.Empty(t, store.Requests(), "no network call for invalid input")
	assert.Empty(t, store.Records())
}

func TestCreateAndUpdateRejectNonFinitePremiumBeforeAnyRequest(t *testing.T) {
	svc, store := newService(t, testhelpers.Holder(1, "Jane Doe", "1995-03-10", "HF95001"))
	ctx := context.Background()

	for _, premium := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		in := testhelpers.JaneDoe()
		in.Premium = &premium

		_, err := svc.Create(ctx, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrValidation))

		_, err = svc.Update(ctx, 1, in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrValidation))
	}
	assert.Empty(t, store.Requests())
}

func TestCreateSurfacesTransportError(t *testing.T) {
	svc, store := newService(t)
	store.FailWith(http.StatusServiceUnavailable)

	_, err := svc.Create(context.Background(), testhelpers.JaneDoe())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrTransport))
	assert.Len(t, store.Requests(), 1, "first failed read stops the workflow")
}

func TestConcurrentCreatesInOneProcessDoNotCollide(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, testhelpers.JaneDoe())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	ids := map[int]bool{}
	numbers := map[string]bool{}
	for _, r := range store.Records() {
		ids[r.ID] = true
		numbers[r.PolicyNumber] = true
	}
	assert.Len(t, ids, n)
	assert.Len(t, numbers, n)
}

// -----------------------------------------------------------------------------
// Read / Update / Delete
// -----------------------------------------------------------------------------

func TestFetchByIDNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.FetchByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestUpdateKeepsIdentifiers(t *testing.T) {
	svc, _ := newService(t, testhelpers.Holder(4, "Jane Doe", "1995-03-10", "HF95001"))
	ctx := context.Background()

	in := testhelpers.JaneDoe()
	in.HolderName = "Janet Doe"
	in.DateOfBirth = "1960-01-01"
	in.PolicyType = models.PolicyTypeTravel
	in.Premium = models.PremiumOf(99.99)
	in.Status = models.PolicyStatusInactive

	_, err := svc.Update(ctx, 4, in)
	require.NoError(t, err)

	got, err := svc.FetchByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.ID)
	assert.Equal(t, "HF95001", got.PolicyNumber, "policy number never changes")
	assert.Equal(t, in, got.Input())
}

func TestUpdateMissingRecord(t *testing.T) {
	svc, store := newService(t)

	_, err := svc.Update(context.Background(), 5, testhelpers.JaneDoe())
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
	for _, r := range store.Requests() {
		assert.NotEqual(t, http.MethodPut, r.Method)
	}
}

func TestUpdateRejectsInvalidInput(t *testing.T) {
	svc, store := newService(t, testhelpers.Holder(1, "Jane Doe", "1995-03-10", "HF95001"))

	in := testhelpers.JaneDoe()
	in.Nominee = "Jo"
	_, err := svc.Update(context.Background(), 1, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrValidation))
	assert.Empty(t, store.Requests())
}

func TestDeleteThenFetchAll(t *testing.T) {
	svc, _ := newService(t,
		testhelpers.Holder(1, "A Person", "1990-01-01", "HF90001"),
		testhelpers.Holder(2, "B Person", "1991-01-01", "HF91001"),
	)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))

	all, err := svc.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].ID)

	err = svc.Delete(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrTransport))
}
