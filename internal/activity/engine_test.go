package activity

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/renthub/backend/internal/contracts"
	"github.com/wonny/renthub/backend/pkg/config"
	"github.com/wonny/renthub/backend/pkg/logger"
)

// In-memory fakes for the collaborator boundaries

type fakeLeaseRepo struct {
	leases []*contracts.Lease
	err    error
}

func (f *fakeLeaseRepo) GetAll(ctx context.Context) ([]*contracts.Lease, error) {
	return f.leases, f.err
}

func (f *fakeLeaseRepo) GetByID(ctx context.Context, id string) (*contracts.Lease, error) {
	for _, l := range f.leases {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeLeaseRepo) GetByStatus(ctx context.Context, status contracts.LeaseStatus) ([]*contracts.Lease, error) {
	var out []*contracts.Lease
	for _, l := range f.leases {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, f.err
}

type fakePropertyRepo struct {
	properties []*contracts.Property
	err        error
}

func (f *fakePropertyRepo) GetAll(ctx context.Context) ([]*contracts.Property, error) {
	return f.properties, f.err
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id string) (*contracts.Property, error) {
	for _, p := range f.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

type fakeTenantRepo struct {
	tenants []*contracts.Tenant
	err     error
}

func (f *fakeTenantRepo) GetAll(ctx context.Context) ([]*contracts.Tenant, error) {
	return f.tenants, f.err
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (*contracts.Tenant, error) {
	for _, t := range f.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errors.New("not found")
}

// fakeSink records created activities and can reject specific calls
type fakeSink struct {
	created []*contracts.Activity
	failOn  map[int]bool // 1-based call numbers to reject
	calls   int
}

func (f *fakeSink) Create(ctx context.Context, activity *contracts.Activity) (*contracts.Activity, error) {
	f.calls++
	if f.failOn[f.calls] {
		return nil, errors.New("insert rejected")
	}

	stored := *activity
	stored.ID = fmt.Sprintf("a-%d", f.calls)
	stored.CreatedAt = time.Now()
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeSink) GetByStatus(ctx context.Context, status contracts.ActivityStatus) ([]*contracts.Activity, error) {
	return f.created, nil
}

func (f *fakeSink) GetByRelatedID(ctx context.Context, relatedID string) ([]*contracts.Activity, error) {
	var out []*contracts.Activity
	for _, a := range f.created {
		if a.RelatedID == relatedID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeSink) UpdateStatus(ctx context.Context, id string, status contracts.ActivityStatus) error {
	for _, a := range f.created {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func newTestEngine(leases *fakeLeaseRepo, props *fakePropertyRepo, tenants *fakeTenantRepo, sink *fakeSink, opts ...Option) *Engine {
	return NewEngine(leases, props, tenants, sink, testLogger(), opts...)
}

func activeLease(id string, start, end time.Time) *contracts.Lease {
	tenantID := "t-" + id
	return &contracts.Lease{
		ID:         id,
		PropertyID: "p-" + id,
		TenantID:   &tenantID,
		StartDate:  start,
		EndDate:    end,
		Status:     contracts.LeaseStatusActive,
	}
}

func TestEngine_Generate_Scenario(t *testing.T) {
	// Lease 2024-01-01 → 2024-12-31 seen on 2024-10-01: all three
	// expiration reminders are still ahead (the 90-day one lands on
	// 2024-10-02, the day after today), plus rent reminders for the
	// three remaining months.
	today := date(2024, 10, 1)
	lease := activeLease("c-1", date(2024, 1, 1), date(2024, 12, 31))

	leases := &fakeLeaseRepo{leases: []*contracts.Lease{lease}}
	props := &fakePropertyRepo{properties: []*contracts.Property{{ID: "p-c-1", Name: "Han River Flat"}}}
	tenants := &fakeTenantRepo{tenants: []*contracts.Tenant{{ID: "t-c-1", Name: "Lee Jiho"}}}
	sink := &fakeSink{}

	engine := newTestEngine(leases, props, tenants, sink)

	got, err := engine.Generate(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, got, 6)

	// Expiration reminders come first, in threshold order
	assert.Equal(t, date(2024, 10, 2), got[0].Date)
	assert.Equal(t, contracts.ActivityPriorityLow, got[0].Priority)
	assert.Equal(t, date(2024, 12, 1), got[1].Date)
	assert.Equal(t, contracts.ActivityPriorityMedium, got[1].Priority)
	assert.Equal(t, date(2024, 12, 24), got[2].Date)
	assert.Equal(t, contracts.ActivityPriorityHigh, got[2].Priority)

	// Then the rent schedule for October, November and December
	assert.Equal(t, date(2024, 10, 1), got[3].Date)
	assert.Equal(t, date(2024, 11, 1), got[4].Date)
	assert.Equal(t, date(2024, 12, 1), got[5].Date)

	for _, a := range got[3:] {
		assert.Equal(t, contracts.ActivityTypeRentPayment, a.Type)
		assert.Equal(t, contracts.ActivityPriorityMedium, a.Priority)
	}

	for _, a := range got {
		assert.Equal(t, "c-1", a.RelatedID)
		assert.Equal(t, "Han River Flat", a.PropertyName)
		assert.Equal(t, "Lee Jiho", a.TenantName)
		assert.NotEmpty(t, a.ID, "returned records carry the sink-assigned id")
	}
}

func TestEngine_Generate_SkipsInactiveLeases(t *testing.T) {
	today := date(2024, 10, 1)

	inactive := activeLease("c-1", date(2024, 1, 1), date(2024, 12, 31))
	inactive.Status = contracts.LeaseStatusInactive
	draft := activeLease("c-2", date(2024, 1, 1), date(2024, 12, 31))
	draft.Status = contracts.LeaseStatusDraft

	leases := &fakeLeaseRepo{leases: []*contracts.Lease{inactive, draft}}
	sink := &fakeSink{}

	engine := newTestEngine(leases, &fakePropertyRepo{}, &fakeTenantRepo{}, sink)

	got, err := engine.Generate(context.Background(), today)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, sink.calls, "sink must not be called for non-active leases")
}

func TestEngine_Generate_PartialSinkFailure(t *testing.T) {
	// Exactly three candidates: one 7-day expiration reminder plus two
	// rent reminders. The sink rejects the second write; the first and
	// third must still come back.
	today := date(2025, 7, 25)
	lease := activeLease("c-1", date(2025, 1, 15), date(2025, 8, 20))

	leases := &fakeLeaseRepo{leases: []*contracts.Lease{lease}}
	sink := &fakeSink{failOn: map[int]bool{2: true}}

	engine := newTestEngine(leases, &fakePropertyRepo{}, &fakeTenantRepo{}, sink)

	got, err := engine.Generate(context.Background(), today)
	require.NoError(t, err, "a single write failure must not fail the run")
	require.Len(t, got, 2)
	assert.Equal(t, 3, sink.calls, "all candidates are attempted")

	assert.Equal(t, contracts.ActivityTypeContractExpiration, got[0].Type)
	assert.Equal(t, contracts.ActivityTypeRentPayment, got[1].Type)
	assert.Equal(t, date(2025, 8, 1), got[1].Date, "the rejected July reminder is skipped")
}

func TestEngine_Generate_UnresolvedPartiesGetPlaceholder(t *testing.T) {
	today := date(2024, 10, 1)
	lease := activeLease("c-1", date(2024, 1, 1), date(2024, 12, 31))

	leases := &fakeLeaseRepo{leases: []*contracts.Lease{lease}}
	sink := &fakeSink{}

	// Empty directories: every lookup misses
	engine := newTestEngine(leases, &fakePropertyRepo{}, &fakeTenantRepo{}, sink)

	got, err := engine.Generate(context.Background(), today)
	require.NoError(t, err)
	require.NotEmpty(t, got, "a resolution miss never blocks generation")

	for _, a := range got {
		assert.Equal(t, UnknownName, a.PropertyName)
		assert.Equal(t, UnknownName, a.TenantName)
	}
}

func TestEngine_Generate_NilTenant(t *testing.T) {
	today := date(2024, 10, 1)
	lease := activeLease("c-1", date(2024, 1, 1), date(2024, 12, 31))
	lease.TenantID = nil

	leases := &fakeLeaseRepo{leases: []*contracts.Lease{lease}}
	sink := &fakeSink{}

	engine := newTestEngine(leases, &fakePropertyRepo{}, &fakeTenantRepo{}, sink)

	got, err := engine.Generate(context.Background(), today)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	assert.Nil(t, got[0].TenantID)
	assert.Equal(t, UnknownName, got[0].TenantName)
}

func TestEngine_Generate_LeaseReadFailureIsFatal(t *testing.T) {
	leases := &fakeLeaseRepo{err: errors.New("connection refused")}
	sink := &fakeSink{}

	engine := newTestEngine(leases, &fakePropertyRepo{}, &fakeTenantRepo{}, sink)

	got, err := engine.Generate(context.Background(), date(2024, 10, 1))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Zero(t, sink.calls)
}

func TestEngine_Generate_DirectoryReadFailureIsFatal(t *testing.T) {
	lease := activeLease("c-1", date(2024, 1, 1), date(2024, 12, 31))
	leases := &fakeLeaseRepo{leases: []*contracts.Lease{lease}}
	props := &fakePropertyRepo{err: errors.New("connection refused")}
	sink := &fakeSink{}

	engine := newTestEngine(leases, props, &fakeTenantRepo{}, sink)

	got, err := engine.Generate(context.Background(), date(2024, 10, 1))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Zero(t, sink.calls)
}

func TestEngine_Generate_MultipleLeasesKeepOrder(t *testing.T) {
	today := date(2025, 7, 25)
	first := activeLease("c-1", date(2025, 1, 15), date(2025, 8, 20))
	second := activeLease("c-2", date(2025, 1, 15), date(2025, 8, 20))

	leases := &fakeLeaseRepo{leases: []*contracts.Lease{first, second}}
	sink := &fakeSink{}

	engine := newTestEngine(leases, &fakePropertyRepo{}, &fakeTenantRepo{}, sink)

	got, err := engine.Generate(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, got, 6)

	for _, a := range got[:3] {
		assert.Equal(t, "c-1", a.RelatedID)
	}
	for _, a := range got[3:] {
		assert.Equal(t, "c-2", a.RelatedID)
	}
}

func TestEngine_Generate_Locale(t *testing.T) {
	today := date(2025, 5, 10)
	lease := activeLease("c-1", date(2025, 1, 15), date(2025, 8, 15))

	leases := &fakeLeaseRepo{leases: []*contracts.Lease{lease}}
	sink := &fakeSink{}

	engine := newTestEngine(leases, &fakePropertyRepo{}, &fakeTenantRepo{}, sink, WithLocale("ko"))

	got, err := engine.Generate(context.Background(), today)
	require.NoError(t, err)

	var sawPayment bool
	for _, a := range got {
		if a.Type == contracts.ActivityTypeRentPayment {
			sawPayment = true
			assert.Contains(t, a.Description, "월")
		}
	}
	assert.True(t, sawPayment)
}
