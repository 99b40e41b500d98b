package installer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dustin/go-humanize"

	"github.com/Kareem-create21/SilentSetup/pkg/model"
)

// InfoMarker is the static content of the installer.info member.
const InfoMarker = "SilentSetup installer package\n"

var (
	posixInstallTmpl = template.Must(template.New("install.sh").Parse(`#!/bin/sh
# Installer for {{.Name}} v{{.Version}}
set -e

INSTALL_DIR="${1:-{{.InstallPath}}}"

echo "Installing {{.Name}} v{{.Version}} to ${INSTALL_DIR}..."
mkdir -p "${INSTALL_DIR}"
echo "{{.Name}} v{{.Version}} installed."
`))

	posixUninstallTmpl = template.Must(template.New("uninstall.sh").Parse(`#!/bin/sh
# Uninstaller for {{.Name}} v{{.Version}}
set -e

INSTALL_DIR="${1:-{{.InstallPath}}}"

echo "Removing {{.Name}} v{{.Version}} from ${INSTALL_DIR}..."
rm -rf "${INSTALL_DIR}"
echo "{{.Name}} removed."
`))

	batchInstallTmpl = template.Must(template.New("install.bat").Parse(`@echo off
rem Installer for {{.Name}} v{{.Version}}
set "INSTALL_DIR=%~1"
if "%INSTALL_DIR%"=="" set "INSTALL_DIR={{.InstallPath}}"

echo Installing {{.Name}} v{{.Version}} to %INSTALL_DIR%...
if not exist "%INSTALL_DIR%" mkdir "%INSTALL_DIR%"
echo {{.Name}} v{{.Version}} installed.
`))

	batchUninstallTmpl = template.Must(template.New("uninstall.bat").Parse(`@echo off
rem Uninstaller for {{.Name}} v{{.Version}}
set "INSTALL_DIR=%~1"
if "%INSTALL_DIR%"=="" set "INSTALL_DIR={{.InstallPath}}"

echo Removing {{.Name}} v{{.Version}} from %INSTALL_DIR%...
if exist "%INSTALL_DIR%" rmdir /s /q "%INSTALL_DIR%"
echo {{.Name}} removed.
`))
)

type scriptData struct {
	Name        string
	Version     string
	InstallPath string
}

func renderScript(tmpl *template.Template, project *model.Project) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, scriptData{
		Name:        project.Name,
		Version:     project.Version,
		InstallPath: project.DefaultInstallPath,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func renderInstallScript(project *model.Project, platform Platform) ([]byte, error) {
	if platform.PosixScripts() {
		return renderScript(posixInstallTmpl, project)
	}
	return renderScript(batchInstallTmpl, project)
}

func renderUninstallScript(project *model.Project, platform Platform) ([]byte, error) {
	if platform.PosixScripts() {
		return renderScript(posixUninstallTmpl, project)
	}
	return renderScript(batchUninstallTmpl, project)
}

// renderReadme writes the human-facing description of the archive: the
// project header followed by a flat listing of every node in the file
// tree, directories included.
func renderReadme(project *model.Project, platform Platform) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s v%s\n", project.Name, project.Version)
	fmt.Fprintf(&buf, "Publisher: %s\n", project.Publisher)
	fmt.Fprintf(&buf, "Platform: %s\n", platform)
	if project.Description != "" {
		fmt.Fprintf(&buf, "\n%s\n", project.Description)
	}

	buf.WriteString("\nFiles:\n")
	for _, node := range project.Files {
		node.Walk(func(n *model.FileNode) {
			path := n.Path
			if n.IsDirectory {
				path += "/"
			}
			fmt.Fprintf(&buf, "  %s (%s)\n", path, humanize.IBytes(uint64(n.Size)))
		})
	}

	return buf.Bytes()
}
