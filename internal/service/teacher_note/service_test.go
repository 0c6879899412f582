package teacher_note_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-control/internal/repository/teacher_note"
	"student-control/internal/testutil"
)

func TestNoteIsSingleton(t *testing.T) {
	db := testutil.NewDB(t)
	s := NewTeacherNoteService(teacher_note.NewTeacherNoteRepository(db))

	for _, content := range []string{"primeira", "segunda", ""} {
		require.NoError(t, s.SaveNote(content))
	}

	note, err := s.GetNote()
	require.NoError(t, err)
	assert.Empty(t, note.Content)

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM teacher_notes`))
	assert.Equal(t, 1, rows)
}
