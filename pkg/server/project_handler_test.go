package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/Kareem-create21/SilentSetup/pkg/config"
	"github.com/Kareem-create21/SilentSetup/pkg/installer"
	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
	"github.com/Kareem-create21/SilentSetup/pkg/repo"
)

func testRouter(t *testing.T) (chi.Router, string) {
	schema, err := repo.GetSchema()
	require.NoError(t, err)
	store, err := io.NewMemoryStore(schema, hclog.NewNullLogger())
	require.NoError(t, err)

	scratchDir := t.TempDir()
	builder := installer.NewBuilder(scratchDir, hclog.NewNullLogger())
	builder.Platform = installer.PlatformLinux

	cfg := &config.Config{}
	cfg.ApplyDefaults()

	router := chi.NewRouter()
	SetupProjectHandlers(router, store, builder, cfg)
	return router, scratchDir
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func demoRequest() map[string]interface{} {
	return map[string]interface{}{
		"name":               "Demo",
		"version":            "1.0.0",
		"publisher":          "Acme",
		"defaultInstallPath": "/opt/demo",
		"compressionLevel":   6,
		"files": []map[string]interface{}{
			{"id": "f1", "name": "a.txt", "path": "a.txt", "size": 1024, "type": "text/plain", "isDirectory": false},
		},
	}
}

func Test_API_CreateAndGetProject(t *testing.T) {
	router, _ := testRouter(t)

	var created model.Project
	rec := doJSON(t, router, http.MethodPost, "/api/projects", demoRequest(), &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, created.ID)
	require.Equal(t, "Demo", created.Name)
	require.Len(t, created.Files, 1)

	var fetched model.Project
	rec = doJSON(t, router, http.MethodGet, "/api/projects/1", nil, &fetched)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created.ID, fetched.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/projects/42", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/projects/abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_API_UpdateProject(t *testing.T) {
	router, _ := testRouter(t)
	doJSON(t, router, http.MethodPost, "/api/projects", demoRequest(), nil)

	var updated model.Project
	rec := doJSON(t, router, http.MethodPatch, "/api/projects/1",
		map[string]interface{}{"version": "2.0.0"}, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "2.0.0", updated.Version)
	require.Equal(t, "Demo", updated.Name, "fields absent from the patch are preserved")
}

func Test_API_DeleteProject(t *testing.T) {
	router, _ := testRouter(t)
	doJSON(t, router, http.MethodPost, "/api/projects", demoRequest(), nil)

	rec := doJSON(t, router, http.MethodDelete, "/api/projects/1", nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/projects/1", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_API_FileMergeAndRemove(t *testing.T) {
	router, _ := testRouter(t)
	doJSON(t, router, http.MethodPost, "/api/projects", demoRequest(), nil)

	addReq := map[string]interface{}{
		"files": []map[string]interface{}{
			{"id": "f1", "name": "dup.txt", "path": "dup.txt"},
			{"id": "f2", "name": "b.txt", "path": "b.txt", "size": 10},
		},
	}

	var updated model.Project
	rec := doJSON(t, router, http.MethodPost, "/api/projects/1/files", addReq, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, updated.Files, 2)
	require.Equal(t, "a.txt", updated.Files[0].Name, "existing node wins over duplicate id")

	rec = doJSON(t, router, http.MethodDelete, "/api/projects/1/files/f1", nil, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, updated.Files, 1)
	require.Equal(t, "f2", updated.Files[0].ID)
}

func Test_API_BuildAndDownload(t *testing.T) {
	router, _ := testRouter(t)
	doJSON(t, router, http.MethodPost, "/api/projects", demoRequest(), nil)

	var build struct {
		ArtifactID string `json:"artifactId"`
		FileName   string `json:"fileName"`
	}
	rec := doJSON(t, router, http.MethodPost, "/api/projects/1/build", nil, &build)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, build.ArtifactID)
	require.Equal(t, "Demo-1.0.0-installer.run", build.FileName)

	rec = doJSON(t, router, http.MethodGet, "/api/artifacts/"+build.ArtifactID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), build.FileName)

	// the body is the archive itself
	reader, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	names := make([]string, 0, len(reader.File))
	for _, member := range reader.File {
		names = append(names, member.Name)
	}
	require.ElementsMatch(t,
		[]string{"README.txt", "install.sh", "uninstall.sh", "installer.info", "project.json"},
		names)
}

func Test_API_DownloadAfterFileRemoved(t *testing.T) {
	router, scratchDir := testRouter(t)
	doJSON(t, router, http.MethodPost, "/api/projects", demoRequest(), nil)

	var build struct {
		ArtifactID string `json:"artifactId"`
		FileName   string `json:"fileName"`
	}
	rec := doJSON(t, router, http.MethodPost, "/api/projects/1/build", nil, &build)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/artifacts/"+build.ArtifactID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// remove the archive behind the registry's back
	archivePath := filepath.Join(scratchDir, build.ArtifactID, build.FileName)
	require.NoError(t, os.Remove(archivePath))

	rec = doJSON(t, router, http.MethodGet, "/api/artifacts/"+build.ArtifactID, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/artifacts/unknown", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_API_BuildUnknownProject(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/projects/42/build", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_API_Estimate(t *testing.T) {
	router, _ := testRouter(t)

	var resp struct {
		EstimatedBytes int64 `json:"estimatedBytes"`
	}
	rec := doJSON(t, router, http.MethodGet, "/api/estimate?bytes=1000&level=0", nil, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(1000), resp.EstimatedBytes)

	rec = doJSON(t, router, http.MethodGet, "/api/estimate?bytes=oops&level=0", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_API_MalformedBody(t *testing.T) {
	router, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
