package escalation_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"resolveit/backend/internal/escalation"
	"resolveit/backend/internal/models"
	"resolveit/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// TestScheduler_FiresSweep verifies that a running scheduler triggers the
// sweep on its cadence.
func TestScheduler_FiresSweep(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	var sweeps atomic.Int32
	storageMock.On("FindStaleComplaints", mock.Anything, models.StatusResolved).
		Run(func(mock.Arguments) { sweeps.Add(1) }).
		Return([]models.Complaint{}, nil)

	svc := escalation.NewService(storageMock, new(MockMailer), nil, zap.NewNop())
	sched := escalation.NewScheduler(svc, zap.NewNop())
	sched.Interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// Act
	done := make(chan struct{})
	go func() {
		sched.Start(ctx)
		close(done)
	}()
	<-done

	// Assert
	assert.GreaterOrEqual(t, sweeps.Load(), int32(1))
}

// TestScheduler_Stop verifies Stop terminates the loop without waiting for
// context cancellation.
func TestScheduler_Stop(t *testing.T) {
	// Arrange
	storageMock := new(storagetest.MockStorage)
	storageMock.On("FindStaleComplaints", mock.Anything, models.StatusResolved).
		Return([]models.Complaint{}, nil)

	svc := escalation.NewService(storageMock, new(MockMailer), nil, zap.NewNop())
	sched := escalation.NewScheduler(svc, zap.NewNop())
	sched.Interval = time.Hour

	// Act
	done := make(chan struct{})
	go func() {
		sched.Start(context.Background())
		close(done)
	}()
	sched.Stop()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}

	// A second Stop is a no-op, not a panic.
	assert.NotPanics(t, sched.Stop)
}

// TestScheduler_ContextCancel verifies context cancellation also stops the
// loop.
func TestScheduler_ContextCancel(t *testing.T) {
	// Arrange
	svc := escalation.NewService(new(storagetest.MockStorage), new(MockMailer), nil, zap.NewNop())
	sched := escalation.NewScheduler(svc, zap.NewNop())
	sched.Interval = time.Hour
	ctx, cancel := context.WithCancel(context.Background())

	// Act
	done := make(chan struct{})
	go func() {
		sched.Start(ctx)
		close(done)
	}()
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
