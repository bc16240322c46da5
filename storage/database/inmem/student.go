package inmemdb

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/storage/snapshot"
)

// studentRepository keeps encoded snapshots keyed by path, so a load never
// shares memory with the roster that was saved.
type studentRepository struct {
	db *snapshotTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.snapshot}
}

func (repo *studentRepository) Save(_ context.Context, path string, students []student.Student) error {
	data, err := snapshot.Encode(students)
	if err != nil {
		return err
	}
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table[path] = data
	return nil
}

func (repo *studentRepository) Load(_ context.Context, path string) ([]student.Student, error) {
	repo.db.RLock()
	data, ok := repo.db.table[path]
	repo.db.RUnlock()

	if !ok {
		return nil, errors.Wrap(student.ErrSnapshotNotFound, path)
	}
	return snapshot.DecodeStudents(data)
}
