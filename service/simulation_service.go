package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthcare-optimizer/domain"
	"healthcare-optimizer/metrics"
)

// SimulationService drives the cosmetic patient-flow progress indicator: a
// fixed number of fixed-delay ticks. It models nothing.
type SimulationService struct {
	steps       int
	stepDelay   time.Duration
	settleDelay time.Duration
	log         *zap.Logger
}

func NewSimulationService(steps int, stepDelay, settleDelay time.Duration, log *zap.Logger) *SimulationService {
	if steps <= 0 {
		steps = DefaultSimulationSteps
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SimulationService{
		steps:       steps,
		stepDelay:   stepDelay,
		settleDelay: settleDelay,
		log:         log,
	}
}

// Run emits a start frame, one frame per step and a final completion frame.
// It stops early when ctx is done or emit fails.
func (s *SimulationService) Run(ctx context.Context, emit func(domain.ProgressFrame) error) error {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID))

	err := s.run(ctx, runID, emit)
	status := "completed"
	if err != nil {
		status = "cancelled"
		log.Debug("simulation stopped", zap.Error(err))
	}
	metrics.SimulationRuns.WithLabelValues(status).Inc()
	return err
}

func (s *SimulationService) run(ctx context.Context, runID string, emit func(domain.ProgressFrame) error) error {
	if err := emit(domain.ProgressFrame{RunID: runID, Text: SimulationStartText}); err != nil {
		return err
	}

	for i := 1; i <= s.steps; i++ {
		if err := sleep(ctx, s.stepDelay); err != nil {
			return err
		}
		percent := i * 100 / s.steps
		frame := domain.ProgressFrame{
			RunID:   runID,
			Percent: percent,
			Text:    fmt.Sprintf("Simulating %d%%", percent),
		}
		if err := emit(frame); err != nil {
			return err
		}
	}

	if err := sleep(ctx, s.settleDelay); err != nil {
		return err
	}
	return emit(domain.ProgressFrame{
		RunID:   runID,
		Percent: 100,
		Text:    SimulationCompleteText,
		Done:    true,
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
