// Package snapshot encodes whole rosters into the versioned document shared by all storage drivers.
package snapshot

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/gradetracker/core/student"
)

// Version is the only schema version understood by Decode.
const Version = 1

type Snapshot struct {
	Version  int               `json:"version"`
	ID       string            `json:"id"`
	SavedAt  time.Time         `json:"saved_at"` // UTC
	Students []student.Student `json:"students"`
}

var nowFunc = time.Now // mockable

// New wraps students in a fresh Snapshot.
func New(students []student.Student) Snapshot {
	return Snapshot{
		Version:  Version,
		ID:       uuid.New().String(),
		SavedAt:  nowFunc().UTC(),
		Students: students,
	}
}

// Encode returns the JSON document of a new snapshot of students.
func Encode(students []student.Student) ([]byte, error) {
	b, err := json.MarshalIndent(New(students), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encoding snapshot")
	}
	return append(b, '\n'), nil
}

// Decode parses a snapshot document strictly: unknown fields, trailing content and
// unsupported versions are all reported as student.ErrSnapshotMalformed.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return Snapshot{}, errors.Wrap(student.ErrSnapshotMalformed, err.Error())
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Snapshot{}, errors.Wrap(student.ErrSnapshotMalformed, "trailing content")
	}
	if snap.Version != Version {
		return Snapshot{}, errors.Wrapf(student.ErrSnapshotMalformed, "unsupported version %d", snap.Version)
	}
	return snap, nil
}

// DecodeStudents is Decode returning only the students.
func DecodeStudents(data []byte) ([]student.Student, error) {
	snap, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return snap.Students, nil
}
