package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Kareem-create21/SilentSetup/pkg/config"
	"github.com/Kareem-create21/SilentSetup/pkg/estimate"
	"github.com/Kareem-create21/SilentSetup/pkg/installer"
	"github.com/Kareem-create21/SilentSetup/pkg/io"
	"github.com/Kareem-create21/SilentSetup/pkg/model"
	"github.com/Kareem-create21/SilentSetup/pkg/usecase"
)

type projectHandler struct {
	store   *io.MemoryStore
	builder *installer.Builder
	cfg     *config.Config
}

// SetupProjectHandlers mounts the project/build API onto the router.
func SetupProjectHandlers(router chi.Router, store *io.MemoryStore, builder *installer.Builder, cfg *config.Config) {
	h := &projectHandler{store: store, builder: builder, cfg: cfg}

	router.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)
			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", h.getProject)
				r.Patch("/", h.updateProject)
				r.Delete("/", h.deleteProject)
				r.Post("/files", h.addFiles)
				r.Delete("/files/{fileID}", h.removeFile)
				r.Post("/build", h.buildInstaller)
			})
		})
		r.Get("/artifacts/{artifactID}", h.downloadArtifact)
		r.Get("/estimate", h.estimateSize)
	})
}

func (h *projectHandler) createProject(w http.ResponseWriter, r *http.Request) {
	fields := new(model.ProjectPatch)
	ServeJSON(w, r, fields, func() (interface{}, int, error) {
		tx := h.store.Txn(true)
		defer tx.Abort()

		// All fields are optional on create; unset ones take the zero
		// value except the compression level, which defaults from config.
		base := &model.Project{CompressionLevel: h.cfg.DefaultCompressionLevel}
		created, err := usecase.Projects(tx).Create(fields.Apply(base))
		if err != nil {
			return nil, 0, err
		}
		if err := tx.Commit(); err != nil {
			return nil, 0, err
		}
		return created, http.StatusCreated, nil
	})
}

func (h *projectHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	ServeJSON(w, r, nil, func() (interface{}, int, error) {
		tx := h.store.Txn(false)
		defer tx.Abort()

		projects, err := usecase.Projects(tx).List()
		if err != nil {
			return nil, 0, err
		}
		return projects, http.StatusOK, nil
	})
}

func (h *projectHandler) getProject(w http.ResponseWriter, r *http.Request) {
	ServeJSON(w, r, nil, func() (interface{}, int, error) {
		id, err := projectID(r)
		if err != nil {
			return nil, 0, err
		}

		tx := h.store.Txn(false)
		defer tx.Abort()

		project, err := usecase.Projects(tx).GetByID(id)
		if err != nil {
			return nil, 0, mapError(err, "project")
		}
		return project, http.StatusOK, nil
	})
}

func (h *projectHandler) updateProject(w http.ResponseWriter, r *http.Request) {
	patch := new(model.ProjectPatch)
	ServeJSON(w, r, patch, func() (interface{}, int, error) {
		id, err := projectID(r)
		if err != nil {
			return nil, 0, err
		}

		tx := h.store.Txn(true)
		defer tx.Abort()

		updated, err := usecase.Projects(tx).Update(id, patch)
		if err != nil {
			return nil, 0, mapError(err, "project")
		}
		if err := tx.Commit(); err != nil {
			return nil, 0, err
		}
		return updated, http.StatusOK, nil
	})
}

func (h *projectHandler) deleteProject(w http.ResponseWriter, r *http.Request) {
	ServeJSON(w, r, nil, func() (interface{}, int, error) {
		id, err := projectID(r)
		if err != nil {
			return nil, 0, err
		}

		tx := h.store.Txn(true)
		defer tx.Abort()

		existed, err := usecase.Projects(tx).Delete(id)
		if err != nil {
			return nil, 0, err
		}
		if !existed {
			return nil, 0, NewNotFoundError("project")
		}
		if err := tx.Commit(); err != nil {
			return nil, 0, err
		}
		return nil, http.StatusNoContent, nil
	})
}

type addFilesRequest struct {
	Files []*model.FileNode `json:"files"`
}

func (h *projectHandler) addFiles(w http.ResponseWriter, r *http.Request) {
	req := new(addFilesRequest)
	ServeJSON(w, r, req, func() (interface{}, int, error) {
		id, err := projectID(r)
		if err != nil {
			return nil, 0, err
		}

		tx := h.store.Txn(true)
		defer tx.Abort()

		updated, err := usecase.Projects(tx).MergeFiles(id, req.Files)
		if err != nil {
			return nil, 0, mapError(err, "project")
		}
		if err := tx.Commit(); err != nil {
			return nil, 0, err
		}
		return updated, http.StatusOK, nil
	})
}

func (h *projectHandler) removeFile(w http.ResponseWriter, r *http.Request) {
	ServeJSON(w, r, nil, func() (interface{}, int, error) {
		id, err := projectID(r)
		if err != nil {
			return nil, 0, err
		}
		fileID := chi.URLParam(r, "fileID")

		tx := h.store.Txn(true)
		defer tx.Abort()

		updated, err := usecase.Projects(tx).RemoveFile(id, fileID)
		if err != nil {
			return nil, 0, mapError(err, "project")
		}
		if err := tx.Commit(); err != nil {
			return nil, 0, err
		}
		return updated, http.StatusOK, nil
	})
}

type buildResponse struct {
	ArtifactID string `json:"artifactId"`
	FileName   string `json:"fileName"`
}

func (h *projectHandler) buildInstaller(w http.ResponseWriter, r *http.Request) {
	ServeJSON(w, r, nil, func() (interface{}, int, error) {
		id, err := projectID(r)
		if err != nil {
			return nil, 0, err
		}

		tx := h.store.Txn(true)
		defer tx.Abort()

		artifact, err := usecase.Builds(tx, h.builder).Build(id)
		if err != nil {
			return nil, 0, mapError(err, "project")
		}
		if err := tx.Commit(); err != nil {
			return nil, 0, err
		}
		return &buildResponse{
			ArtifactID: artifact.ID,
			FileName:   artifact.FileName,
		}, http.StatusOK, nil
	})
}

func (h *projectHandler) downloadArtifact(w http.ResponseWriter, r *http.Request) {
	artifactID := chi.URLParam(r, "artifactID")

	tx := h.store.Txn(false)
	defer tx.Abort()

	artifact, err := usecase.Artifacts(tx, nil).Resolve(artifactID)
	if err != nil {
		WriteError(w, mapError(err, "artifact"))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	http.ServeFile(w, r, artifact.Path)
}

type estimateResponse struct {
	EstimatedBytes int64 `json:"estimatedBytes"`
}

func (h *projectHandler) estimateSize(w http.ResponseWriter, r *http.Request) {
	ServeJSON(w, r, nil, func() (interface{}, int, error) {
		totalBytes, err := strconv.ParseInt(r.URL.Query().Get("bytes"), 10, 64)
		if err != nil {
			return nil, 0, NewBadRequestError(err, "query parameter 'bytes' must be an integer")
		}
		level, err := strconv.Atoi(r.URL.Query().Get("level"))
		if err != nil {
			return nil, 0, NewBadRequestError(err, "query parameter 'level' must be an integer")
		}

		return &estimateResponse{
			EstimatedBytes: estimate.CompressedSize(totalBytes, level),
		}, http.StatusOK, nil
	})
}

func projectID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "projectID"))
	if err != nil {
		return 0, NewBadRequestError(err, "project id must be an integer")
	}
	return id, nil
}

func mapError(err error, what string) error {
	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrArtifactMissing):
		return NewNotFoundError(what)
	case errors.Is(err, model.ErrBuildFailed):
		return NewHTTPError(err, http.StatusInternalServerError, []string{"installer build failed"})
	default:
		return err
	}
}
