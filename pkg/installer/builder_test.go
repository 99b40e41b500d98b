package installer

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/Kareem-create21/SilentSetup/pkg/model"
)

func testProject() *model.Project {
	return &model.Project{
		ID:                 1,
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

func testBuilder(t *testing.T, platform Platform) *Builder {
	builder := NewBuilder(t.TempDir(), hclog.NewNullLogger())
	builder.Platform = platform
	return builder
}

func archiveMembers(t *testing.T, path string) map[string][]byte {
	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	members := map[string][]byte{}
	for _, member := range reader.File {
		rc, err := member.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		members[member.Name] = data
	}
	return members
}

func memberNames(t *testing.T, path string) []string {
	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	names := make([]string, 0, len(reader.File))
	for _, member := range reader.File {
		names = append(names, member.Name)
	}
	return names
}

func Test_Build_PosixArchive(t *testing.T) {
	builder := testBuilder(t, PlatformLinux)
	project := testProject()

	artifact, err := builder.Build(project)
	require.NoError(t, err)
	require.Equal(t, "Demo-1.0.0-installer.run", artifact.FileName)
	require.Equal(t, 1, artifact.ProjectID)

	members := archiveMembers(t, artifact.Path)
	require.Len(t, members, 5)

	readme := string(members["README.txt"])
	require.Contains(t, readme, "Demo v1.0.0")
	require.Contains(t, readme, "Publisher: Acme")
	require.Contains(t, readme, "a.txt")

	install := string(members["install.sh"])
	require.Contains(t, install, "/opt/demo")
	require.Contains(t, install, "Demo")
	require.Contains(t, string(members["uninstall.sh"]), "/opt/demo")

	require.Equal(t, InfoMarker, string(members["installer.info"]))

	var dumped model.Project
	require.NoError(t, json.Unmarshal(members["project.json"], &dumped))
	require.Equal(t, "Demo", dumped.Name)
	require.Equal(t, "1.0.0", dumped.Version)
}

func Test_Build_ScriptsAreExecutable(t *testing.T) {
	builder := testBuilder(t, PlatformLinux)

	artifact, err := builder.Build(testProject())
	require.NoError(t, err)

	reader, err := zip.OpenReader(artifact.Path)
	require.NoError(t, err)
	defer reader.Close()

	for _, member := range reader.File {
		switch member.Name {
		case "install.sh", "uninstall.sh":
			require.Equal(t, os.FileMode(0o755), member.Mode()&0o777, member.Name)
		}
	}
}

func Test_Build_WindowsArchive(t *testing.T) {
	builder := testBuilder(t, PlatformWindows)

	artifact, err := builder.Build(testProject())
	require.NoError(t, err)
	require.Equal(t, "Demo-1.0.0-installer.exe", artifact.FileName)

	members := archiveMembers(t, artifact.Path)
	require.Contains(t, members, "install.bat")
	require.Contains(t, members, "uninstall.bat")
	require.Contains(t, string(members["install.bat"]), "Demo")
}

func Test_Build_ZeroFiles(t *testing.T) {
	builder := testBuilder(t, PlatformLinux)
	project := testProject()
	project.Files = nil

	artifact, err := builder.Build(project)
	require.NoError(t, err)

	require.ElementsMatch(t,
		[]string{"README.txt", "install.sh", "uninstall.sh", "installer.info", "project.json"},
		memberNames(t, artifact.Path))

	members := archiveMembers(t, artifact.Path)
	require.Contains(t, string(members["README.txt"]), "Files:\n")
}

func Test_Build_DeterministicStructure(t *testing.T) {
	builder := testBuilder(t, PlatformLinux)
	project := testProject()

	first, err := builder.Build(project)
	require.NoError(t, err)
	second, err := builder.Build(project)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, memberNames(t, first.Path), memberNames(t, second.Path))

	firstMembers := archiveMembers(t, first.Path)
	secondMembers := archiveMembers(t, second.Path)
	require.Equal(t, firstMembers["README.txt"], secondMembers["README.txt"])
	require.Equal(t, firstMembers["install.sh"], secondMembers["install.sh"])
}

func Test_Build_InvalidCompressionLevelFallsBack(t *testing.T) {
	builder := testBuilder(t, PlatformLinux)
	project := testProject()
	project.CompressionLevel = 42

	artifact, err := builder.Build(project)
	require.NoError(t, err)
	require.Len(t, archiveMembers(t, artifact.Path), 5)
}

func Test_Build_NestedFilesListedInReadme(t *testing.T) {
	builder := testBuilder(t, PlatformLinux)
	project := testProject()
	project.Files = []*model.FileNode{
		{
			ID: "dir", Name: "bin", Path: "bin", Size: 2048, IsDirectory: true,
			Children: []*model.FileNode{
				{ID: "f2", Name: "app", Path: "bin/app", Size: 2048, Type: "application/octet-stream"},
			},
		},
	}

	artifact, err := builder.Build(project)
	require.NoError(t, err)

	readme := string(archiveMembers(t, artifact.Path)["README.txt"])
	require.Contains(t, readme, "bin/ (")
	require.Contains(t, readme, "bin/app")
}
