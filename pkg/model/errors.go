package model

import "fmt"

var (
	ErrNotFound        = fmt.Errorf("not found")
	ErrBuildFailed     = fmt.Errorf("build failed")
	ErrArtifactMissing = fmt.Errorf("artifact file is missing")
)
