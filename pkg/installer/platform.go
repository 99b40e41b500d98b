package installer

// Platform is the build host's operating system (a runtime.GOOS value).
// The archive flavor follows the host the backend runs on, not the
// project's declared target platforms: one build produces one artifact.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
)

// Extension returns the artifact file extension for the platform.
func (p Platform) Extension() string {
	switch p {
	case PlatformWindows:
		return ".exe"
	case PlatformDarwin:
		return ".dmg"
	default:
		return ".run"
	}
}

// ScriptNames returns the install and uninstall script member names.
func (p Platform) ScriptNames() (install, uninstall string) {
	if p == PlatformWindows {
		return "install.bat", "uninstall.bat"
	}
	return "install.sh", "uninstall.sh"
}

// PosixScripts reports whether scripts need an executable mode bit.
func (p Platform) PosixScripts() bool {
	return p != PlatformWindows
}
