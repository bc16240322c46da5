package inmemdb

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/tests"
)

func TestStudentRepository(t *testing.T) {
	ctx := context.Background()
	db, err := Open()
	require.NoError(t, err)
	repo := NewStudentRepository(db)

	_, err = repo.Load(ctx, "Database.txt")
	assert.Equal(t, student.ErrSnapshotNotFound, errors.Cause(err))

	orig := student.NewRoster(repo)
	testutil.SampleRoster(t, orig)
	require.NoError(t, orig.Save(ctx, "Database.txt"))

	// mutating after save must not leak into the snapshot
	require.NoError(t, orig.AddCourse("S2", student.NewCourse("C9", "Late", 1)))

	loaded := student.NewRoster(repo)
	require.NoError(t, loaded.Load(ctx, "Database.txt"))
	s, err := loaded.FindStudent("S2")
	require.NoError(t, err)
	assert.Len(t, s.Courses, 1)
	assert.Equal(t, 4, loaded.Len())
	assert.Equal(t, orig.Students()[0], loaded.Students()[0])
}
