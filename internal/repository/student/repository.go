package student

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"student-control/internal/models"
	"student-control/internal/repository"
)

const studentColumns = `id, name, course, course_days, class_time, active, created_at`

type studentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *models.Student) error {
	query := r.db.Rebind(`
		INSERT INTO students (name, course, course_days, class_time, active)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	student.State = models.StateActive
	err := r.db.QueryRow(
		query,
		student.Name,
		student.Course,
		student.CourseDays,
		student.ClassTime,
		int(student.State),
	).Scan(&student.ID)
	return repository.Translate("create student", err)
}

func (r *studentRepository) GetByID(id int64) (*models.Student, error) {
	var student models.Student
	query := r.db.Rebind(`SELECT ` + studentColumns + ` FROM students WHERE id = ?`)
	err := r.db.Get(&student, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, repository.Translate("get student", err)
	}
	return &student, nil
}

func (r *studentRepository) GetAll(activeOnly bool) ([]models.Student, error) {
	students := []models.Student{}
	var err error
	if activeOnly {
		query := r.db.Rebind(`SELECT ` + studentColumns + ` FROM students WHERE active = ? ORDER BY name, id`)
		err = r.db.Select(&students, query, int(models.StateActive))
	} else {
		err = r.db.Select(&students, `SELECT `+studentColumns+` FROM students ORDER BY name, id`)
	}
	if err != nil {
		return nil, repository.Translate("list students", err)
	}
	return students, nil
}

func (r *studentRepository) Update(student *models.Student) error {
	query := r.db.Rebind(`
		UPDATE students
		SET name = ?, course = ?, course_days = ?, class_time = ?
		WHERE id = ?
	`)
	res, err := r.db.Exec(
		query,
		student.Name,
		student.Course,
		student.CourseDays,
		student.ClassTime,
		student.ID,
	)
	if err != nil {
		return repository.Translate("update student", err)
	}
	return repository.CheckAffected("update student", res)
}

// Archive soft-deletes the student; attendance history stays.
func (r *studentRepository) Archive(id int64) error {
	query := r.db.Rebind(`UPDATE students SET active = ? WHERE id = ?`)
	res, err := r.db.Exec(query, int(models.StateArchived), id)
	if err != nil {
		return repository.Translate("archive student", err)
	}
	return repository.CheckAffected("archive student", res)
}

func (r *studentRepository) CountActive() (int, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM students WHERE active = ?`)
	if err := r.db.Get(&count, query, int(models.StateActive)); err != nil {
		return 0, repository.Translate("count students", err)
	}
	return count, nil
}
