package services

import (
	"context"
	"errors"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/ports"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	plans    []*domain.PlanResult
	requests []string
	err      error
}

func (r *recordingPublisher) Publish(_ context.Context, pub ports.Publication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.plans = append(r.plans, pub.Plan)
	r.requests = append(r.requests, string(pub.RequestData))
	return nil
}

func deliveriesRequest(run string) PlanDeliveriesRequest {
	p := domain.DefaultParameters()
	p.MaxCourierCount = 3
	return PlanDeliveriesRequest{
		Points: staticPoints(),
		Orders: []domain.Order{{ID: 0, Volume: 3}, {ID: 1, Volume: 4}, {ID: 2, Volume: 5}},
		Params: p,
		Run:    run,
		Search: SearchOptions{Seed: DefaultSearchSeed, Workers: 2},
	}
}

func TestPlanDeliveriesRunsBothModes(t *testing.T) {
	pub := &recordingPublisher{}

	set, err := PlanDeliveries(context.Background(), deliveriesRequest(RunAuto), pub)
	require.NoError(t, err)

	require.NotNil(t, set.Dynamic)
	require.NotNil(t, set.Static)
	assert.Equal(t, domain.ModeDynamic, set.Dynamic.Mode)
	assert.Equal(t, domain.ModeStatic, set.Static.Mode)
	assert.Equal(t, []*domain.PlanResult{set.Dynamic, set.Static}, pub.plans)
}

func TestPlanDeliveriesPublishesRequestData(t *testing.T) {
	pub := &recordingPublisher{}
	req := deliveriesRequest(RunStatic)
	req.RequestData = []byte(`{"mode":"static"}`)

	_, err := PlanDeliveries(context.Background(), req, pub)
	require.NoError(t, err)
	assert.Equal(t, []string{`{"mode":"static"}`}, pub.requests)
}

func TestPlanDeliveriesSingleMode(t *testing.T) {
	req := deliveriesRequest(RunAuto)
	req.Orders = nil

	set, err := PlanDeliveries(context.Background(), req, nil)
	require.NoError(t, err)
	assert.NotNil(t, set.Dynamic)
	assert.Nil(t, set.Static)

	set, err = PlanDeliveries(context.Background(), deliveriesRequest(RunStatic), nil)
	require.NoError(t, err)
	assert.Nil(t, set.Dynamic)
	assert.NotNil(t, set.Static)
}

func TestPlanDeliveriesFailsWhole(t *testing.T) {
	pub := &recordingPublisher{}
	req := deliveriesRequest(RunBoth)
	req.Orders[1].Volume = 1000

	set, err := PlanDeliveries(context.Background(), req, pub)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, set)
	assert.Empty(t, pub.plans)
}

func TestPlanDeliveriesRequestErrors(t *testing.T) {
	_, err := PlanDeliveries(context.Background(), deliveriesRequest("sideways"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := deliveriesRequest(RunStatic)
	req.Orders = nil
	_, err = PlanDeliveries(context.Background(), req, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanDeliveriesPublishError(t *testing.T) {
	boom := errors.New("stream unavailable")

	_, err := PlanDeliveries(context.Background(), deliveriesRequest(RunDynamic), &recordingPublisher{err: boom})
	assert.ErrorIs(t, err, boom)
}
