package teacher_note

import (
	"github.com/jmoiron/sqlx"

	"student-control/internal/models"
	"student-control/internal/repository"
)

// the table holds exactly one row, seeded by the migration
const noteID = 1

type teacherNoteRepository struct {
	db *sqlx.DB
}

func NewTeacherNoteRepository(db *sqlx.DB) repository.TeacherNoteRepository {
	return &teacherNoteRepository{db: db}
}

func (r *teacherNoteRepository) Get() (*models.TeacherNote, error) {
	var note models.TeacherNote
	query := r.db.Rebind(`SELECT id, content, updated_at FROM teacher_notes WHERE id = ?`)
	if err := r.db.Get(&note, query, noteID); err != nil {
		return nil, repository.Translate("get note", err)
	}
	return &note, nil
}

func (r *teacherNoteRepository) Save(content string) error {
	query := r.db.Rebind(`
		UPDATE teacher_notes
		SET content = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)
	res, err := r.db.Exec(query, content, noteID)
	if err != nil {
		return repository.Translate("save note", err)
	}
	return repository.CheckAffected("save note", res)
}
