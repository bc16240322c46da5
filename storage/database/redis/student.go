package redisdb

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/storage/snapshot"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

// Save stores the snapshot under a single key; SET replaces it atomically.
func (repo *studentRepository) Save(ctx context.Context, path string, students []student.Student) error {
	data, err := snapshot.Encode(students)
	if err != nil {
		return err
	}
	if err := repo.db.client.Set(ctx, repo.db.key(path), data, 0).Err(); err != nil {
		return errors.Wrapf(err, "saving snapshot %s", path)
	}
	return nil
}

func (repo *studentRepository) Load(ctx context.Context, path string) ([]student.Student, error) {
	data, err := repo.db.client.Get(ctx, repo.db.key(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Wrap(student.ErrSnapshotNotFound, path)
		}
		return nil, errors.Wrapf(err, "loading snapshot %s", path)
	}
	return snapshot.DecodeStudents(data)
}
