package usecase

import (
	"time"

	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
	"github.com/Kareem-create21/SilentSetup/pkg/repo"
)

type ProjectService struct {
	db   *io.MemoryStoreTxn
	repo *repo.ProjectRepository
}

func Projects(db *io.MemoryStoreTxn) *ProjectService {
	return &ProjectService{
		db:   db,
		repo: repo.NewProjectRepository(db),
	}
}

// Create assigns the next identifier and stores the record. The incoming
// object's ID and CreatedAt are overwritten; never fails for well-formed
// input.
func (s *ProjectService) Create(project *model.Project) (*model.Project, error) {
	stored := project.Clone()
	stored.ID = s.db.NextProjectID()
	stored.CreatedAt = time.Now()
	if stored.Files == nil {
		stored.Files = []*model.FileNode{}
	}

	if err := s.repo.Create(stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *ProjectService) GetByID(id int) (*model.Project, error) {
	return s.repo.GetByID(id)
}

func (s *ProjectService) List() ([]*model.Project, error) {
	return s.repo.List()
}

// Update shallow-merges the patch over the stored record. Fields absent
// in the patch are preserved.
func (s *ProjectService) Update(id int, patch *model.ProjectPatch) (*model.Project, error) {
	stored, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(stored)
	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ProjectService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}

// MergeFiles unions the incoming nodes into the project's top-level file
// list, de-duplicating by node id with the existing node winning.
// Applying the same nodes twice is a no-op the second time.
func (s *ProjectService) MergeFiles(id int, nodes []*model.FileNode) (*model.Project, error) {
	stored, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated := stored.Clone()
	updated.Files = model.MergeFileNodes(stored.Files, nodes)
	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveFile drops the top-level node with the given id. Nested nodes are
// not searched; removing an unknown file id leaves the record unchanged.
func (s *ProjectService) RemoveFile(id int, fileID string) (*model.Project, error) {
	stored, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	files, _ := model.RemoveFileNode(stored.Files, fileID)
	updated := stored.Clone()
	updated.Files = files
	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}
