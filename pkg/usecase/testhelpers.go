package usecase

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
	"github.com/Kareem-create21/SilentSetup/pkg/repo"
)

func testStore(t *testing.T) *io.MemoryStore {
	schema, err := repo.GetSchema()
	require.NoError(t, err)

	store, err := io.NewMemoryStore(schema, hclog.NewNullLogger())
	require.NoError(t, err)
	return store
}

func demoProject() *model.Project {
	return &model.Project{
		Name:               "Demo",
		Version:            "1.0.0",
		Publisher:          "Acme",
		DefaultInstallPath: "/opt/demo",
		CompressionLevel:   6,
		Files: []*model.FileNode{
			{ID: "f1", Name: "a.txt", Path: "a.txt", Size: 1024, Type: "text/plain"},
		},
	}
}

func createProject(t *testing.T, store *io.MemoryStore, project *model.Project) *model.Project {
	tx := store.Txn(true)
	defer tx.Abort()

	created, err := Projects(tx).Create(project)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return created
}
