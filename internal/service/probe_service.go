package service

import (
	"context"
	"sync"
	"time"

	"digital-sales-be/internal/pkg/logger"
)

// ProbeStatus is the last known reachability of the agent backend.
type ProbeStatus struct {
	AgentStatus      string    `json:"agent_status"`      // "connected" | "disconnected"
	ElevenLabsStatus string    `json:"elevenlabs_status"` // "configured" | "not_configured"
	CheckedAt        time.Time `json:"checked_at"`
}

type IProbeService interface {
	Start(ctx context.Context)
	Stop()
	// Suspend pauses periodic checks without tearing the loop down; Resume
	// restarts them and runs a check right away.
	Suspend()
	Resume()
	Status() ProbeStatus
	// Probe runs one health check immediately and returns the new status.
	Probe(ctx context.Context) ProbeStatus
}

type probeService struct {
	gateway  AgentGateway
	interval time.Duration
	logger   logger.ILogger

	mu        sync.Mutex
	status    ProbeStatus
	suspended bool
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewProbeService(gateway AgentGateway, interval time.Duration, log logger.ILogger) IProbeService {
	return &probeService{
		gateway:  gateway,
		interval: interval,
		logger:   log,
		status: ProbeStatus{
			AgentStatus:      "disconnected",
			ElevenLabsStatus: "not_configured",
		},
	}
}

// Start launches the background probe loop. A failed check marks the backend
// disconnected; it never propagates an error to callers.
func (s *probeService) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		s.Probe(loopCtx)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				suspended := s.suspended
				s.mu.Unlock()
				if !suspended {
					s.Probe(loopCtx)
				}
			}
		}
	}()
}

func (s *probeService) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (s *probeService) Suspend() {
	s.mu.Lock()
	s.suspended = true
	s.mu.Unlock()
}

func (s *probeService) Resume() {
	s.mu.Lock()
	wasSuspended := s.suspended
	s.suspended = false
	s.mu.Unlock()

	if wasSuspended {
		s.Probe(context.Background())
	}
}

func (s *probeService) Status() ProbeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *probeService) Probe(ctx context.Context) ProbeStatus {
	status := ProbeStatus{
		AgentStatus:      "disconnected",
		ElevenLabsStatus: "not_configured",
		CheckedAt:        time.Now(),
	}

	health, err := s.gateway.Health(ctx)
	if err != nil {
		s.logger.Warn("ProbeService", "Agent backend unreachable", map[string]interface{}{"error": err.Error()})
	} else {
		status.AgentStatus = health.AgentStatus
		status.ElevenLabsStatus = health.ElevenLabsStatus
	}

	s.mu.Lock()
	prev := s.status.AgentStatus
	s.status = status
	s.mu.Unlock()

	if prev != status.AgentStatus {
		s.logger.Info("ProbeService", "Agent connectivity changed", map[string]interface{}{
			"from": prev,
			"to":   status.AgentStatus,
		})
	}
	return status
}
