package filedb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/tests"
)

func TestStudentRepository_roundTrip(t *testing.T) {
	ctx := context.Background()
	path := testutil.DBPath(t)

	orig := student.NewRoster(NewStudentRepository())
	testutil.SampleRoster(t, orig)
	require.NoError(t, orig.Save(ctx, path))

	loaded := student.NewRoster(NewStudentRepository())
	require.NoError(t, loaded.Load(ctx, path))
	assert.Equal(t, orig.Students(), loaded.Students())
}

func TestStudentRepository_overwrite(t *testing.T) {
	ctx := context.Background()
	path := testutil.DBPath(t)
	repo := NewStudentRepository()

	big := student.NewRoster(repo)
	testutil.SampleRoster(t, big)
	require.NoError(t, big.Save(ctx, path))

	small := student.NewRoster(repo)
	testutil.CreateStudent(t, small, "Only", "One", "S42")
	require.NoError(t, small.Save(ctx, path))

	students, err := repo.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "S42", students[0].ID)

	// no temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStudentRepository_emptyRoster(t *testing.T) {
	ctx := context.Background()
	path := testutil.DBPath(t)

	r := student.NewRoster(NewStudentRepository())
	require.NoError(t, r.Save(ctx, path))
	testutil.CreateStudent(t, r, "Tmp", "Tmp", "T")
	require.NoError(t, r.Load(ctx, path))
	assert.Equal(t, 0, r.Len())
}

func TestStudentRepository_loadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(malformed, []byte("not a snapshot"), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.txt"), wantErr: student.ErrSnapshotNotFound},
		{name: "malformed content", path: malformed, wantErr: student.ErrSnapshotMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := student.NewRoster(NewStudentRepository())
			testutil.CreateStudent(t, r, "Keep", "Me", "K1")

			err := r.Load(ctx, tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, errors.Cause(err))
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, 1, r.Len(), "roster must be unchanged")
		})
	}
}

func TestStudentRepository_saveError(t *testing.T) {
	r := student.NewRoster(NewStudentRepository())
	testutil.SampleRoster(t, r)
	err := r.Save(context.Background(), filepath.Join(t.TempDir(), "missing-dir", "db.txt"))
	assert.Error(t, err)
}
