package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"student-control/internal/models/config"
)

func TestNewSQLiteMigratesSchema(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "students.db")}

	db, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	var tables []string
	require.NoError(t, db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name != 'goose_db_version' ORDER BY name`))
	assert.Equal(t, []string{"attendance", "events", "free_attendance", "free_students", "students", "teacher_notes", "users"}, tables)
}

func TestTeacherNoteSeededOnce(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "students.db")}

	for i := 0; i < 2; i++ {
		db, err := New(cfg, zap.NewNop())
		require.NoError(t, err)

		var count int
		require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM teacher_notes`))
		assert.Equal(t, 1, count)
		db.Close()
	}
}

func TestSingletonNoteRejectsSecondRow(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "students.db")}
	db, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO teacher_notes (id, content) VALUES (2, 'outra')`)
	assert.Error(t, err)
}

func TestForeignKeysEnforced(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "students.db")}
	db, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO attendance (student_id, date, present) VALUES (999, '2024-03-01', 1)`)
	assert.Error(t, err)
}
