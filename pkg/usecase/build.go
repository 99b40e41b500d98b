package usecase

import (
	"github.com/Kareem-create21/SilentSetup/pkg/installer"
	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
	"github.com/Kareem-create21/SilentSetup/pkg/repo"
)

type BuildService struct {
	projects  *repo.ProjectRepository
	artifacts *repo.ArtifactRepository
	builder   *installer.Builder
}

func Builds(db *io.MemoryStoreTxn, builder *installer.Builder) *BuildService {
	return &BuildService{
		projects:  repo.NewProjectRepository(db),
		artifacts: repo.NewArtifactRepository(db),
		builder:   builder,
	}
}

// Build renders an archive for the project and registers the resulting
// artifact. Run inside a write transaction: the builder sees a project
// snapshot no concurrent update can interleave with, and the artifact is
// registered only after the archive is fully flushed and closed.
func (s *BuildService) Build(projectID int) (*model.Artifact, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	artifact, err := s.builder.Build(project)
	if err != nil {
		return nil, err
	}

	if err := s.artifacts.Create(artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}
