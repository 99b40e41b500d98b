package model

import "time"

const ProjectType = "project" // also, memdb table name

// Compression levels accepted by the archiver.
const (
	MinCompressionLevel     = 0
	MaxCompressionLevel     = 9
	DefaultCompressionLevel = 6
)

type Project struct {
	ID int `json:"id"` // PK, assigned once, immutable

	Name               string `json:"name"`
	Version            string `json:"version"`
	Publisher          string `json:"publisher"`
	Description        string `json:"description,omitempty"`
	DefaultInstallPath string `json:"defaultInstallPath"`
	AllowCustomPath    bool   `json:"allowCustomPath"`
	CompressionLevel   int    `json:"compressionLevel"`

	Files []*FileNode `json:"files"`

	// Presentation and deployment attributes. Stored and returned as-is,
	// the build pipeline does not interpret them.
	IconPath         string   `json:"iconPath,omitempty"`
	SplashPath       string   `json:"splashPath,omitempty"`
	TargetPlatforms  []string `json:"targetPlatforms,omitempty"`
	Languages        []string `json:"languages,omitempty"`
	LicenseText      string   `json:"licenseText,omitempty"`
	RequireElevation bool     `json:"requireElevation,omitempty"`
	AutoUpdateURL    string   `json:"autoUpdateUrl,omitempty"`
	EncryptFiles     bool     `json:"encryptFiles,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Project) ObjType() string {
	return ProjectType
}

// Clone returns a deep-enough copy for the copy-on-write discipline over
// memdb: the top-level struct and the file slice are fresh, the nodes
// themselves are shared (callers replacing nodes must build new ones).
func (p *Project) Clone() *Project {
	clone := *p
	clone.Files = append([]*FileNode{}, p.Files...)
	clone.TargetPlatforms = append([]string{}, p.TargetPlatforms...)
	clone.Languages = append([]string{}, p.Languages...)
	return &clone
}

// ProjectPatch is a partial update: nil fields keep the stored value.
// ID and CreatedAt are not patchable.
type ProjectPatch struct {
	Name               *string      `json:"name,omitempty"`
	Version            *string      `json:"version,omitempty"`
	Publisher          *string      `json:"publisher,omitempty"`
	Description        *string      `json:"description,omitempty"`
	DefaultInstallPath *string      `json:"defaultInstallPath,omitempty"`
	AllowCustomPath    *bool        `json:"allowCustomPath,omitempty"`
	CompressionLevel   *int         `json:"compressionLevel,omitempty"`
	Files              *[]*FileNode `json:"files,omitempty"`
	IconPath           *string      `json:"iconPath,omitempty"`
	SplashPath         *string      `json:"splashPath,omitempty"`
	TargetPlatforms    *[]string    `json:"targetPlatforms,omitempty"`
	Languages          *[]string    `json:"languages,omitempty"`
	LicenseText        *string      `json:"licenseText,omitempty"`
	RequireElevation   *bool        `json:"requireElevation,omitempty"`
	AutoUpdateURL      *string      `json:"autoUpdateUrl,omitempty"`
	EncryptFiles       *bool        `json:"encryptFiles,omitempty"`
}

// Apply merges the patch over a clone of project and returns it.
func (patch *ProjectPatch) Apply(project *Project) *Project {
	result := project.Clone()
	if patch.Name != nil {
		result.Name = *patch.Name
	}
	if patch.Version != nil {
		result.Version = *patch.Version
	}
	if patch.Publisher != nil {
		result.Publisher = *patch.Publisher
	}
	if patch.Description != nil {
		result.Description = *patch.Description
	}
	if patch.DefaultInstallPath != nil {
		result.DefaultInstallPath = *patch.DefaultInstallPath
	}
	if patch.AllowCustomPath != nil {
		result.AllowCustomPath = *patch.AllowCustomPath
	}
	if patch.CompressionLevel != nil {
		result.CompressionLevel = *patch.CompressionLevel
	}
	if patch.Files != nil {
		result.Files = append([]*FileNode{}, (*patch.Files)...)
	}
	if patch.IconPath != nil {
		result.IconPath = *patch.IconPath
	}
	if patch.SplashPath != nil {
		result.SplashPath = *patch.SplashPath
	}
	if patch.TargetPlatforms != nil {
		result.TargetPlatforms = append([]string{}, (*patch.TargetPlatforms)...)
	}
	if patch.Languages != nil {
		result.Languages = append([]string{}, (*patch.Languages)...)
	}
	if patch.LicenseText != nil {
		result.LicenseText = *patch.LicenseText
	}
	if patch.RequireElevation != nil {
		result.RequireElevation = *patch.RequireElevation
	}
	if patch.AutoUpdateURL != nil {
		result.AutoUpdateURL = *patch.AutoUpdateURL
	}
	if patch.EncryptFiles != nil {
		result.EncryptFiles = *patch.EncryptFiles
	}
	return result
}
