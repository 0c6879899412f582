package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"student-control/internal/models"
	"student-control/internal/service"
)

func TestCoreGraph(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "students.db"))
	t.Setenv("REPORTS_DIR", filepath.Join(dir, "reports"))
	t.Setenv("BACKUP_DIR", filepath.Join(dir, "backups"))
	t.Setenv("BOT_ENABLED", "false")

	var (
		students service.StudentService
		reports  service.ReportService
		backups  service.BackupService
	)
	app := fxtest.New(t, Core, fx.NopLogger, fx.Populate(&students, &reports, &backups))
	app.RequireStart()
	defer app.RequireStop()

	s, err := students.Enroll(models.StudentInput{Name: "Ana", Course: "Python", CourseDays: "Seg"})
	require.NoError(t, err)
	assert.NotZero(t, s.ID)

	b, err := backups.Create()
	require.NoError(t, err)
	assert.FileExists(t, b.Path)
}
