package free_student

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"student-control/internal/models"
	"student-control/internal/repository"
)

const freeStudentColumns = `id, name, phone, class_time, start_lesson, active, created_at`

type freeStudentRepository struct {
	db *sqlx.DB
}

func NewFreeStudentRepository(db *sqlx.DB) repository.FreeStudentRepository {
	return &freeStudentRepository{db: db}
}

func (r *freeStudentRepository) Create(student *models.FreeStudent) error {
	query := r.db.Rebind(`
		INSERT INTO free_students (name, phone, class_time, start_lesson, active)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	student.State = models.StateActive
	err := r.db.QueryRow(
		query,
		student.Name,
		student.Phone,
		student.ClassTime,
		student.StartLesson,
		int(student.State),
	).Scan(&student.ID)
	return repository.Translate("create free student", err)
}

func (r *freeStudentRepository) GetByID(id int64) (*models.FreeStudent, error) {
	var student models.FreeStudent
	query := r.db.Rebind(`SELECT ` + freeStudentColumns + ` FROM free_students WHERE id = ?`)
	err := r.db.Get(&student, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, repository.Translate("get free student", err)
	}
	return &student, nil
}

func (r *freeStudentRepository) GetAll(activeOnly bool) ([]models.FreeStudent, error) {
	students := []models.FreeStudent{}
	var err error
	if activeOnly {
		query := r.db.Rebind(`SELECT ` + freeStudentColumns + ` FROM free_students WHERE active = ? ORDER BY name, id`)
		err = r.db.Select(&students, query, int(models.StateActive))
	} else {
		err = r.db.Select(&students, `SELECT `+freeStudentColumns+` FROM free_students ORDER BY name, id`)
	}
	if err != nil {
		return nil, repository.Translate("list free students", err)
	}
	return students, nil
}

func (r *freeStudentRepository) Update(student *models.FreeStudent) error {
	query := r.db.Rebind(`
		UPDATE free_students
		SET name = ?, phone = ?, class_time = ?, start_lesson = ?
		WHERE id = ?
	`)
	res, err := r.db.Exec(
		query,
		student.Name,
		student.Phone,
		student.ClassTime,
		student.StartLesson,
		student.ID,
	)
	if err != nil {
		return repository.Translate("update free student", err)
	}
	return repository.CheckAffected("update free student", res)
}

func (r *freeStudentRepository) Archive(id int64) error {
	query := r.db.Rebind(`UPDATE free_students SET active = ? WHERE id = ?`)
	res, err := r.db.Exec(query, int(models.StateArchived), id)
	if err != nil {
		return repository.Translate("archive free student", err)
	}
	return repository.CheckAffected("archive free student", res)
}

func (r *freeStudentRepository) CountActive() (int, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM free_students WHERE active = ?`)
	if err := r.db.Get(&count, query, int(models.StateActive)); err != nil {
		return 0, repository.Translate("count free students", err)
	}
	return count, nil
}
