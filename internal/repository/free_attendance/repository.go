package free_attendance

import (
	"github.com/jmoiron/sqlx"

	"student-control/internal/models"
	"student-control/internal/repository"
)

type freeAttendanceRepository struct {
	db *sqlx.DB
}

func NewFreeAttendanceRepository(db *sqlx.DB) repository.FreeAttendanceRepository {
	return &freeAttendanceRepository{db: db}
}

func (r *freeAttendanceRepository) Mark(attendance *models.FreeAttendance) error {
	query := r.db.Rebind(`
		INSERT INTO free_attendance (free_student_id, date, present, lesson, note)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (free_student_id, date)
		DO UPDATE SET
			present = excluded.present,
			lesson = excluded.lesson,
			note = excluded.note
		RETURNING id
	`)
	err := r.db.QueryRow(
		query,
		attendance.FreeStudentID,
		attendance.Date,
		repository.BoolToInt(attendance.Present),
		attendance.Lesson,
		attendance.Note,
	).Scan(&attendance.ID)
	return repository.Translate("mark free lesson", err)
}

func (r *freeAttendanceRepository) GetByFreeStudent(freeStudentID int64) ([]models.FreeAttendance, error) {
	lessons := []models.FreeAttendance{}
	query := r.db.Rebind(`
		SELECT id, free_student_id, date, present, lesson, note
		FROM free_attendance
		WHERE free_student_id = ?
		ORDER BY date ASC
	`)
	if err := r.db.Select(&lessons, query, freeStudentID); err != nil {
		return nil, repository.Translate("free lessons", err)
	}
	return lessons, nil
}

func (r *freeAttendanceRepository) Delete(id int64) error {
	query := r.db.Rebind(`DELETE FROM free_attendance WHERE id = ?`)
	res, err := r.db.Exec(query, id)
	if err != nil {
		return repository.Translate("delete free lesson", err)
	}
	return repository.CheckAffected("delete free lesson", res)
}

func (r *freeAttendanceRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM free_attendance`); err != nil {
		return 0, repository.Translate("count free lessons", err)
	}
	return count, nil
}
