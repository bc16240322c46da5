package database

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/gradetracker/core"
	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/storage/database/file"
	"github.com/trezcool/gradetracker/storage/database/inmem"
	"github.com/trezcool/gradetracker/storage/database/redis"
)

// Open returns the student repository of the configured storage driver and a
// func releasing its resources.
func Open(ctx context.Context, conf *core.Config) (student.Repository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Database.Driver {
	case core.DriverFile, "":
		return filedb.NewStudentRepository(), noop, nil
	case core.DriverMemory:
		db, err := inmemdb.Open()
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening in-memory database")
		}
		return inmemdb.NewStudentRepository(db), noop, nil
	case core.DriverRedis:
		db, err := redisdb.Open(ctx, conf)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening redis database")
		}
		return redisdb.NewStudentRepository(db), db.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown storage driver %q", conf.Database.Driver)
	}
}
