package inmemdb

import "sync"

type (
	DB struct {
		snapshot *snapshotTable
	}

	snapshotTable struct {
		sync.RWMutex
		table map[string][]byte
	}
)

func Open() (*DB, error) {
	db := &DB{
		snapshot: &snapshotTable{table: make(map[string][]byte)},
	}
	return db, nil
}
