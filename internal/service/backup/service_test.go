package backup_service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/models/config"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newService(t *testing.T, keep int) (*backupService, string) {
	t.Helper()
	root := t.TempDir()
	live := filepath.Join(root, "students.db")
	require.NoError(t, os.WriteFile(live, []byte("v1"), 0o644))

	s := NewBackupService(
		config.DatabaseConfig{Driver: config.DriverSQLite, Path: live},
		config.BackupConfig{Dir: filepath.Join(root, "backups"), Keep: keep},
		zap.NewNop(),
	).(*backupService)
	c := &clock{t: time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local)}
	s.now = c.now
	return s, live
}

func TestCreateAndList(t *testing.T) {
	s, live := newService(t, 0)

	empty, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, empty, "missing dir lists nothing")

	first, err := s.Create()
	require.NoError(t, err)
	assert.Equal(t, "students_backup_2024-03-04_10-00-01.db", first.Name)
	assert.Equal(t, int64(2), first.Size)

	require.NoError(t, os.WriteFile(live, []byte("v2"), 0o644))
	second, err := s.Create()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "notes.txt"), []byte("x"), 0o644))

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Name, list[0].Name, "newest first")
	assert.Equal(t, first.Name, list[1].Name)
}

func TestRestoreAndDelete(t *testing.T) {
	s, live := newService(t, 0)

	snap, err := s.Create()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(live, []byte("changed"), 0o644))
	require.NoError(t, s.Restore(snap.Name))

	data, err := os.ReadFile(live)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))

	require.NoError(t, s.Delete(snap.Name))
	assert.True(t, models.IsNotFound(s.Delete(snap.Name)))
	assert.True(t, models.IsNotFound(s.Restore(snap.Name)))
}

func TestInvalidNames(t *testing.T) {
	s, _ := newService(t, 0)

	for _, name := range []string{
		"",
		"students.db",
		"../students_backup_2024-03-04_10-00-01.db",
		"students_backup_2024-03-04_10-00-01.sql",
		`sub\students_backup_x.db`,
	} {
		assert.True(t, models.IsValidation(s.Restore(name)), name)
		assert.True(t, models.IsValidation(s.Delete(name)), name)
	}
}

func TestPrune(t *testing.T) {
	s, _ := newService(t, 2)

	var names []string
	for i := 0; i < 4; i++ {
		b, err := s.Create()
		require.NoError(t, err)
		names = append(names, b.Name)
	}

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, names[3], list[0].Name)
	assert.Equal(t, names[2], list[1].Name)
}

func TestPostgresUnsupported(t *testing.T) {
	s := NewBackupService(config.DatabaseConfig{Driver: config.DriverPostgres}, config.BackupConfig{Dir: t.TempDir()}, zap.NewNop())

	_, err := s.Create()
	assert.ErrorIs(t, err, ErrBackupUnsupported)
	assert.ErrorIs(t, s.Restore("students_backup_2024-03-04_10-00-01.db"), ErrBackupUnsupported)
}
