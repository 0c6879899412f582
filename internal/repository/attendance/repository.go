package attendance

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"student-control/internal/models"
	"student-control/internal/repository"
)

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Mark(attendance *models.Attendance) error {
	query := r.db.Rebind(`
		INSERT INTO attendance (student_id, date, present, note)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (student_id, date)
		DO UPDATE SET
			present = excluded.present,
			note = excluded.note
		RETURNING id
	`)
	err := r.db.QueryRow(
		query,
		attendance.StudentID,
		attendance.Date,
		repository.BoolToInt(attendance.Present),
		attendance.Note,
	).Scan(&attendance.ID)
	return repository.Translate("mark attendance", err)
}

func (r *attendanceRepository) GetByStudentAndDate(studentID int64, date string) (*models.Attendance, error) {
	query := r.db.Rebind(`
		SELECT id, student_id, date, present, note
		FROM attendance
		WHERE student_id = ? AND date = ?
	`)

	attendance := &models.Attendance{}
	err := r.db.QueryRow(query, studentID, date).Scan(
		&attendance.ID, &attendance.StudentID, &attendance.Date,
		&attendance.Present, &attendance.Note,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, repository.Translate("get attendance", err)
	}
	return attendance, nil
}

func (r *attendanceRepository) GetByDate(date string) ([]models.Attendance, error) {
	query := r.db.Rebind(`
		SELECT id, student_id, date, present, note
		FROM attendance
		WHERE date = ?
		ORDER BY student_id
	`)

	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, repository.Translate("attendance by date", err)
	}
	defer rows.Close()

	var attendances []models.Attendance
	for rows.Next() {
		var attendance models.Attendance
		err := rows.Scan(
			&attendance.ID, &attendance.StudentID, &attendance.Date,
			&attendance.Present, &attendance.Note,
		)
		if err != nil {
			return nil, repository.Translate("attendance by date", err)
		}
		attendances = append(attendances, attendance)
	}

	if err = rows.Err(); err != nil {
		return nil, repository.Translate("attendance by date", err)
	}

	return attendances, nil
}

// GetRange returns the records of [start, end], oldest first.
func (r *attendanceRepository) GetRange(studentID int64, start, end string) ([]models.Attendance, error) {
	attendances := []models.Attendance{}
	query := r.db.Rebind(`
		SELECT id, student_id, date, present, note
		FROM attendance
		WHERE student_id = ? AND date BETWEEN ? AND ?
		ORDER BY date ASC
	`)
	if err := r.db.Select(&attendances, query, studentID, start, end); err != nil {
		return nil, repository.Translate("attendance range", err)
	}
	return attendances, nil
}

func (r *attendanceRepository) Delete(id int64) error {
	query := r.db.Rebind(`DELETE FROM attendance WHERE id = ?`)
	res, err := r.db.Exec(query, id)
	if err != nil {
		return repository.Translate("delete attendance", err)
	}
	return repository.CheckAffected("delete attendance", res)
}

func (r *attendanceRepository) Summary(studentID int64) (present, absent int, err error) {
	query := r.db.Rebind(`
		SELECT
			COALESCE(SUM(CASE WHEN present = 1 THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN present = 0 THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance
		WHERE student_id = ?
	`)
	err = r.db.QueryRow(query, studentID).Scan(&present, &absent)
	return present, absent, repository.Translate("attendance summary", err)
}

func (r *attendanceRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM attendance`); err != nil {
		return 0, repository.Translate("count attendance", err)
	}
	return count, nil
}

// Month arguments are "YYYY-MM" prefixes matched against the stored date text.

func (r *attendanceRepository) MonthlyTotals(month string) (present, absent int, err error) {
	query := r.db.Rebind(`
		SELECT
			COALESCE(SUM(CASE WHEN present = 1 THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN present = 0 THEN 1 ELSE 0 END), 0) AS absent
		FROM attendance
		WHERE date LIKE ?
	`)
	err = r.db.QueryRow(query, month+"-%").Scan(&present, &absent)
	return present, absent, repository.Translate("monthly totals", err)
}

func (r *attendanceRepository) MonthlyByStudent(month string) ([]models.StudentMonth, error) {
	rows := []models.StudentMonth{}
	query := r.db.Rebind(`
		SELECT
			s.id AS student_id, s.name, s.course,
			COALESCE(SUM(CASE WHEN a.present = 1 THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN a.present = 0 THEN 1 ELSE 0 END), 0) AS absent
		FROM students s
		LEFT JOIN attendance a ON a.student_id = s.id AND a.date LIKE ?
		WHERE s.active = ?
		GROUP BY s.id, s.name, s.course
		ORDER BY s.name, s.id
	`)
	if err := r.db.Select(&rows, query, month+"-%", int(models.StateActive)); err != nil {
		return nil, repository.Translate("monthly by student", err)
	}
	return rows, nil
}

func (r *attendanceRepository) AbsenceRanking(month string, limit int) ([]models.AbsenceRank, error) {
	ranking := []models.AbsenceRank{}
	query := r.db.Rebind(`
		SELECT s.id AS student_id, s.name, COUNT(*) AS absences
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		WHERE a.date LIKE ? AND a.present = 0
		GROUP BY s.id, s.name
		ORDER BY absences DESC, s.name ASC, s.id ASC
		LIMIT ?
	`)
	if err := r.db.Select(&ranking, query, month+"-%", limit); err != nil {
		return nil, repository.Translate("absence ranking", err)
	}
	return ranking, nil
}
