package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"student-control/internal/models"
	"student-control/internal/models/config"
	"student-control/internal/repository/attendance"
	"student-control/internal/repository/free_student"
	"student-control/internal/repository/student"
	"student-control/internal/repository/user"
	attendance_service "student-control/internal/service/attendance"
	backup_service "student-control/internal/service/backup"
	promotion_service "student-control/internal/service/promotion"
	report_service "student-control/internal/service/report"
	schedule_service "student-control/internal/service/schedule"
	student_service "student-control/internal/service/student"
	user_service "student-control/internal/service/user"
	database "student-control/pkg"
)

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
	check   func(t *testing.T, err error)
}

func setup(t *testing.T) (*commandLine, string) {
	t.Helper()
	root := t.TempDir()
	dbCfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(root, "students.db")}
	log := zap.NewNop()

	db, err := database.New(dbCfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	students := student.NewStudentRepository(db)
	trials := free_student.NewFreeStudentRepository(db)
	records := attendance.NewAttendanceRepository(db)
	studentSvc := student_service.NewStudentService(students)

	return &commandLine{
		users:      user_service.NewUserService(user.NewUserRepository(db)),
		promotions: promotion_service.NewPromotionService(students, trials, log),
		reports: report_service.NewReportService(
			schedule_service.NewScheduleService(students, records),
			attendance_service.NewAttendanceService(records, log),
			studentSvc,
			filepath.Join(root, "relatorios"),
			log,
		),
		backups: backup_service.NewBackupService(dbCfg, config.BackupConfig{Dir: filepath.Join(root, "backups")}, log),
		log:     log,
	}, root
}

func runAll(t *testing.T, cli *commandLine, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			readPasswordFunc = func(fd int) ([]byte, error) {
				return []byte(tt.pwd), nil
			}

			err := cli.run(append([]string{"admin"}, tt.args...))
			switch {
			case tt.check != nil:
				tt.check(t, err)
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserCommands(t *testing.T) {
	cli, _ := setup(t)

	runAll(t, cli, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "createuser without username", args: []string{"createuser"}, wantErr: errHelp},
		{name: "createuser without password", args: []string{"createuser", "-username", "prof"}, wantErr: errHelp},
		{name: "createuser", args: []string{"createuser", "-username", "prof"}, pwd: "segredo"},
		{
			name: "createuser duplicate",
			args: []string{"createuser", "-username", "prof"},
			pwd:  "segredo",
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, `user "prof" already exists`)
			},
		},
		{name: "resetpassword without password", args: []string{"resetpassword", "-username", "prof"}, wantErr: errHelp},
		{
			name: "resetpassword unknown user",
			args: []string{"resetpassword", "-username", "ninguem"},
			pwd:  "nova",
			check: func(t *testing.T, err error) {
				assert.True(t, models.IsNotFound(err), "got %v", err)
			},
		},
		{name: "resetpassword", args: []string{"resetpassword", "-username", "prof"}, pwd: "nova-senha"},
	})

	u, err := cli.users.Login("prof", "nova-senha")
	require.NoError(t, err)
	assert.Equal(t, "prof", u.Username)
}

func TestReportAndBackupCommands(t *testing.T) {
	cli, root := setup(t)

	runAll(t, cli, []cliTest{
		{name: "report txt", args: []string{"report", "-type", "diario", "-format", "txt", "-date", "2024-03-04"}},
		{name: "report xlsx", args: []string{"report", "-type", "financeiro", "-format", "xlsx"}},
		{
			name: "report bad date",
			args: []string{"report", "-date", "04/03/2024"},
			check: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "report bad format",
			args: []string{"report", "-format", "doc"},
			check: func(t *testing.T, err error) {
				assert.True(t, models.IsValidation(err), "got %v", err)
			},
		},
		{name: "backup", args: []string{"backup"}},
		{name: "backups", args: []string{"backups"}},
		{name: "restore without name", args: []string{"restore"}, wantErr: errHelp},
		{
			name: "restore unknown",
			args: []string{"restore", "-name", "students_backup_2000-01-01_00-00-00.db"},
			check: func(t *testing.T, err error) {
				assert.True(t, models.IsNotFound(err), "got %v", err)
			},
		},
		{name: "deletebackup without name", args: []string{"deletebackup"}, wantErr: errHelp},
	})

	reports, err := os.ReadDir(filepath.Join(root, "relatorios"))
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	backups, err := cli.backups.List()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	require.NoError(t, cli.run([]string{"admin", "deletebackup", "-name", backups[0].Name}))

	backups, err = cli.backups.List()
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestPromoteCommand(t *testing.T) {
	cli, _ := setup(t)

	runAll(t, cli, []cliTest{
		{name: "promote without id", args: []string{"promote"}, wantErr: errHelp},
		{
			name: "promote unknown trial",
			args: []string{"promote", "-id", "7", "-course", "Python", "-days", "Seg"},
			check: func(t *testing.T, err error) {
				assert.True(t, models.IsNotFound(err), "got %v", err)
			},
		},
		{
			name: "promote without course",
			args: []string{"promote", "-id", "7", "-days", "Seg"},
			check: func(t *testing.T, err error) {
				assert.True(t, models.IsValidation(err), "got %v", err)
			},
		},
	})
}
