package repo

import (
	hcmemdb "github.com/hashicorp/go-memdb"

	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
)

func ProjectSchema() map[string]*hcmemdb.TableSchema {
	return map[string]*hcmemdb.TableSchema{
		model.ProjectType: {
			Name: model.ProjectType,
			Indexes: map[string]*hcmemdb.IndexSchema{
				PK: {
					Name:   PK,
					Unique: true,
					Indexer: &hcmemdb.IntFieldIndex{
						Field: "ID",
					},
				},
				"name": {
					Name: "name",
					Indexer: &hcmemdb.StringFieldIndex{
						Field:     "Name",
						Lowercase: true,
					},
				},
			},
		},
	}
}

type ProjectRepository struct {
	db *io.MemoryStoreTxn // called "db" not to provoke transaction semantics
}

func NewProjectRepository(tx *io.MemoryStoreTxn) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

func (r *ProjectRepository) save(project *model.Project) error {
	return r.db.Insert(model.ProjectType, project)
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.save(project)
}

func (r *ProjectRepository) GetByID(id int) (*model.Project, error) {
	raw, err := r.db.First(model.ProjectType, PK, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, model.ErrNotFound
	}
	return raw.(*model.Project), nil
}

func (r *ProjectRepository) Update(project *model.Project) error {
	_, err := r.GetByID(project.ID)
	if err != nil {
		return err
	}
	return r.save(project)
}

// Delete removes the record. The bool result reports whether a record
// existed under the given id.
func (r *ProjectRepository) Delete(id int) (bool, error) {
	project, err := r.GetByID(id)
	if err == model.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, r.db.Delete(model.ProjectType, project)
}

// List returns all projects in id order (memdb iterates the PK index in
// ascending order).
func (r *ProjectRepository) List() ([]*model.Project, error) {
	iter, err := r.db.Get(model.ProjectType, PK)
	if err != nil {
		return nil, err
	}

	list := []*model.Project{}
	for {
		raw := iter.Next()
		if raw == nil {
			break
		}
		list = append(list, raw.(*model.Project))
	}
	return list, nil
}

func (r *ProjectRepository) Iter(action func(*model.Project) (bool, error)) error {
	iter, err := r.db.Get(model.ProjectType, PK)
	if err != nil {
		return err
	}

	for {
		raw := iter.Next()
		if raw == nil {
			break
		}
		next, err := action(raw.(*model.Project))
		if err != nil {
			return err
		}
		if !next {
			break
		}
	}

	return nil
}
