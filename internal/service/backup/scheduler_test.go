package backup_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s, _ := newService(t, 0)

	_, err := NewScheduler("every tuesday", s, zap.NewNop())
	assert.Error(t, err)
}

func TestSchedulerRunCreatesBackup(t *testing.T) {
	s, _ := newService(t, 0)

	sched, err := NewScheduler("0 3 * * *", s, zap.NewNop())
	require.NoError(t, err)

	sched.Start()
	sched.run()
	require.NoError(t, sched.Stop(context.Background()))

	list, err := s.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
