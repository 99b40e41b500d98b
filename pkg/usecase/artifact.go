package usecase

import (
	log "github.com/hashicorp/go-hclog"

	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
	"github.com/Kareem-create21/SilentSetup/pkg/repo"
	"github.com/Kareem-create21/SilentSetup/pkg/util"
)

type ArtifactService struct {
	repo   *repo.ArtifactRepository
	logger log.Logger
}

func Artifacts(db *io.MemoryStoreTxn, logger log.Logger) *ArtifactService {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &ArtifactService{
		repo:   repo.NewArtifactRepository(db),
		logger: logger.Named("artifacts"),
	}
}

// Resolve returns the artifact record only while its file is still on
// disk. A record whose file has been removed externally resolves to
// ErrArtifactMissing: invalidation is lazy, there is no active cleanup.
func (s *ArtifactService) Resolve(artifactID string) (*model.Artifact, error) {
	artifact, err := s.repo.GetByID(artifactID)
	if err != nil {
		return nil, err
	}

	exists, err := util.FileExists(artifact.Path)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.Warn("artifact file is gone from disk", "artifact", artifactID, "path", artifact.Path)
		return nil, model.ErrArtifactMissing
	}
	return artifact, nil
}

func (s *ArtifactService) ListByProject(projectID int) ([]*model.Artifact, error) {
	return s.repo.ListByProject(projectID)
}
