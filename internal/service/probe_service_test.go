package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"digital-sales-be/pkg/upstream"

	"github.com/stretchr/testify/assert"
)

type probeGateway struct {
	fakeGateway

	mu        sync.Mutex
	healthRes *upstream.HealthResponse
	healthErr error
}

func (g *probeGateway) Health(ctx context.Context) (*upstream.HealthResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.healthErr != nil {
		return nil, g.healthErr
	}
	return g.healthRes, nil
}

func (g *probeGateway) setHealth(res *upstream.HealthResponse, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.healthRes = res
	g.healthErr = err
}

func TestProbeReportsConnectedBackend(t *testing.T) {
	gw := &probeGateway{}
	gw.setHealth(&upstream.HealthResponse{
		Status:           "healthy",
		AgentStatus:      "connected",
		ElevenLabsStatus: "configured",
	}, nil)

	svc := NewProbeService(gw, time.Minute, noopLogger{})

	status := svc.Probe(context.Background())
	assert.Equal(t, "connected", status.AgentStatus)
	assert.Equal(t, "configured", status.ElevenLabsStatus)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestProbeMarksUnreachableBackendDisconnected(t *testing.T) {
	gw := &probeGateway{}
	gw.setHealth(nil, errors.New("connection refused"))

	svc := NewProbeService(gw, time.Minute, noopLogger{})

	status := svc.Probe(context.Background())
	assert.Equal(t, "disconnected", status.AgentStatus)
	assert.Equal(t, "not_configured", status.ElevenLabsStatus)
}

func TestProbeStatusBeforeFirstCheck(t *testing.T) {
	svc := NewProbeService(&probeGateway{}, time.Minute, noopLogger{})

	status := svc.Status()
	assert.Equal(t, "disconnected", status.AgentStatus)
	assert.True(t, status.CheckedAt.IsZero())
}

func TestProbeTracksRecovery(t *testing.T) {
	gw := &probeGateway{}
	gw.setHealth(nil, errors.New("connection refused"))
	svc := NewProbeService(gw, time.Minute, noopLogger{})

	svc.Probe(context.Background())
	assert.Equal(t, "disconnected", svc.Status().AgentStatus)

	gw.setHealth(&upstream.HealthResponse{AgentStatus: "connected", ElevenLabsStatus: "configured"}, nil)
	svc.Probe(context.Background())
	assert.Equal(t, "connected", svc.Status().AgentStatus)
}

func TestProbeResumeRunsImmediateCheck(t *testing.T) {
	gw := &probeGateway{}
	gw.setHealth(nil, errors.New("connection refused"))
	svc := NewProbeService(gw, time.Hour, noopLogger{})

	svc.Suspend()
	gw.setHealth(&upstream.HealthResponse{AgentStatus: "connected", ElevenLabsStatus: "configured"}, nil)

	svc.Resume()
	assert.Equal(t, "connected", svc.Status().AgentStatus)

	// Resume without a prior Suspend does not re-probe.
	gw.setHealth(nil, errors.New("connection refused"))
	svc.Resume()
	assert.Equal(t, "connected", svc.Status().AgentStatus)
}

func TestProbeStartRunsInitialCheckAndStops(t *testing.T) {
	gw := &probeGateway{}
	gw.setHealth(&upstream.HealthResponse{AgentStatus: "connected", ElevenLabsStatus: "configured"}, nil)

	svc := NewProbeService(gw, time.Hour, noopLogger{})
	svc.Start(context.Background())
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		return svc.Status().AgentStatus == "connected"
	}, time.Second, 5*time.Millisecond)

	svc.Stop()
	// Stop is idempotent.
	svc.Stop()
}
