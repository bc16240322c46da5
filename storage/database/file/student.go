package filedb

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/storage/snapshot"
)

type studentRepository struct {
	perm os.FileMode
}

func NewStudentRepository() student.Repository {
	return &studentRepository{perm: 0o644}
}

// Save replaces the file at path with a new snapshot. The snapshot is written to a
// temporary file in the same directory and renamed over path, so readers see either
// the previous or the new snapshot in full.
func (repo *studentRepository) Save(_ context.Context, path string, students []student.Student) error {
	data, err := snapshot.Encode(students)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, repo.perm); err != nil {
		return errors.Wrapf(err, "saving snapshot to %s", path)
	}
	return nil
}

func (repo *studentRepository) Load(_ context.Context, path string) ([]student.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(student.ErrSnapshotNotFound, path)
		}
		return nil, errors.Wrapf(err, "opening snapshot %s", path)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", path)
	}
	students, err := snapshot.DecodeStudents(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return students, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	syncDir(dir)
	return nil
}

// syncDir flushes the rename. Best effort: not every platform can fsync a directory.
func syncDir(dir string) {
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
}
