package model

import "time"

const ArtifactType = "artifact" // also, memdb table name

// Artifact maps an opaque id to a generated archive on disk. Records are
// append-only for the life of the process; the file itself is owned by the
// scratch directory and may outlive or predecease the record.
type Artifact struct {
	ID        string    `json:"id"` // PK, opaque, never reused
	Path      string    `json:"path"`
	FileName  string    `json:"fileName"`
	ProjectID int       `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Artifact) ObjType() string {
	return ArtifactType
}

func (a *Artifact) ObjId() string {
	return a.ID
}
