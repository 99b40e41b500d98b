package repo

import (
	hcmemdb "github.com/hashicorp/go-memdb"

	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
)

const ArtifactProjectIndex = "project_id"

func ArtifactSchema() map[string]*hcmemdb.TableSchema {
	return map[string]*hcmemdb.TableSchema{
		model.ArtifactType: {
			Name: model.ArtifactType,
			Indexes: map[string]*hcmemdb.IndexSchema{
				PK: {
					Name:   PK,
					Unique: true,
					Indexer: &hcmemdb.StringFieldIndex{
						Field: "ID",
					},
				},
				ArtifactProjectIndex: {
					Name: ArtifactProjectIndex,
					Indexer: &hcmemdb.IntFieldIndex{
						Field: "ProjectID",
					},
				},
			},
		},
	}
}

// ArtifactRepository is append-only: records are inserted once and never
// updated or deleted for the life of the process.
type ArtifactRepository struct {
	db *io.MemoryStoreTxn
}

func NewArtifactRepository(tx *io.MemoryStoreTxn) *ArtifactRepository {
	return &ArtifactRepository{db: tx}
}

func (r *ArtifactRepository) Create(artifact *model.Artifact) error {
	return r.db.Insert(model.ArtifactType, artifact)
}

func (r *ArtifactRepository) GetByID(id string) (*model.Artifact, error) {
	raw, err := r.db.First(model.ArtifactType, PK, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, model.ErrNotFound
	}
	return raw.(*model.Artifact), nil
}

// ListByProject returns every artifact built from the given project.
func (r *ArtifactRepository) ListByProject(projectID int) ([]*model.Artifact, error) {
	iter, err := r.db.Get(model.ArtifactType, ArtifactProjectIndex, projectID)
	if err != nil {
		return nil, err
	}

	list := []*model.Artifact{}
	for {
		raw := iter.Next()
		if raw == nil {
			break
		}
		list = append(list, raw.(*model.Artifact))
	}
	return list, nil
}
