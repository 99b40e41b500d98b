package installer

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/hashicorp/go-hclog"
	"github.com/klauspost/compress/flate"

	"github.com/Kareem-create21/SilentSetup/pkg/model"
)

// Builder synthesizes installer archives into a scratch directory. Each
// successful build creates exactly one archive under a fresh directory
// named after the artifact id; the project snapshot is never mutated.
type Builder struct {
	ScratchDir string
	Platform   Platform

	logger log.Logger
}

func NewBuilder(scratchDir string, logger log.Logger) *Builder {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Builder{
		ScratchDir: scratchDir,
		Platform:   Platform(runtime.GOOS),
		logger:     logger.Named("builder"),
	}
}

// Build renders the archive for a project snapshot and returns the
// artifact record to register. On any failure the artifact's scratch
// subdirectory is removed so no partial file is ever resolvable.
func (b *Builder) Build(project *model.Project) (*model.Artifact, error) {
	artifactID := NewArtifactID()
	fileName := ArtifactFileName(project.Name, project.Version, b.Platform)

	artifactDir := filepath.Join(b.ScratchDir, artifactID)
	archivePath := filepath.Join(artifactDir, fileName)

	artifact, err := b.writeArchive(project, artifactDir, archivePath)
	if err != nil {
		b.logger.Error("build failed", "project", project.ID, "path", archivePath, "error", err)
		if rmErr := os.RemoveAll(artifactDir); rmErr != nil {
			b.logger.Warn("cleanup after failed build", "path", artifactDir, "error", rmErr)
		}
		return nil, fmt.Errorf("%w: archive synthesis", model.ErrBuildFailed)
	}

	artifact.ID = artifactID
	b.logger.Info("archive built", "project", project.ID, "artifact", artifactID, "path", archivePath)
	return artifact, nil
}

func (b *Builder) writeArchive(project *model.Project, artifactDir, archivePath string) (*model.Artifact, error) {
	if err := os.MkdirAll(artifactDir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	level := clampLevel(project.CompressionLevel)

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	if err := b.writeMembers(zw, project); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("flush archive: %w", err)
	}

	return &model.Artifact{
		Path:      archivePath,
		FileName:  filepath.Base(archivePath),
		ProjectID: project.ID,
		CreatedAt: time.Now(),
	}, nil
}

func (b *Builder) writeMembers(zw *zip.Writer, project *model.Project) error {
	installName, uninstallName := b.Platform.ScriptNames()

	installScript, err := renderInstallScript(project, b.Platform)
	if err != nil {
		return err
	}
	uninstallScript, err := renderUninstallScript(project, b.Platform)
	if err != nil {
		return err
	}
	projectDump, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	scriptMode := os.FileMode(0)
	if b.Platform.PosixScripts() {
		scriptMode = 0o755
	}

	members := []struct {
		name string
		mode os.FileMode
		data []byte
	}{
		{"README.txt", 0, renderReadme(project, b.Platform)},
		{installName, scriptMode, installScript},
		{uninstallName, scriptMode, uninstallScript},
		{"installer.info", 0, []byte(InfoMarker)},
		{"project.json", 0, projectDump},
	}

	for _, member := range members {
		if err := writeMember(zw, member.name, member.mode, member.data); err != nil {
			return fmt.Errorf("write member %s: %w", member.name, err)
		}
	}
	return nil
}

func writeMember(zw *zip.Writer, name string, mode os.FileMode, data []byte) error {
	header := &zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	}
	if mode != 0 {
		header.SetMode(mode)
	}

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func clampLevel(level int) int {
	if level < model.MinCompressionLevel || level > model.MaxCompressionLevel {
		return model.DefaultCompressionLevel
	}
	return level
}
