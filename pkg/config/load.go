package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/Kareem-create21/SilentSetup/pkg/util"
)

// RecursiveFindConfFiles finds all yaml files in dir.
func RecursiveFindConfFiles(dir string) ([]string, error) {
	paths := make([]string, 0)
	err := filepath.Walk(dir, func(path string, f fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if f.IsDir() {
			// Skip hidden directories inside initial directory
			if strings.HasPrefix(f.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		// ignore hidden files
		if strings.HasPrefix(f.Name(), ".") {
			return nil
		}

		if strings.HasSuffix(f.Name(), ".yaml") || strings.HasSuffix(f.Name(), ".yml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// LoadConfigFiles merges every yaml file into one Config, later files
// overriding earlier ones, then applies defaults and validates. A missing
// or empty conf directory yields the default configuration.
func LoadConfigFiles(paths []string) (*Config, error) {
	merged := &Config{}

	for _, fPath := range paths {
		data, err := os.ReadFile(fPath)
		if err != nil {
			return nil, err
		}

		loaded := &Config{}
		if err := yaml.UnmarshalStrict(data, loaded); err != nil {
			return nil, fmt.Errorf("load config from '%s': %v", fPath, err)
		}

		if loaded.ListenAddress != "" {
			merged.ListenAddress = loaded.ListenAddress
		}
		if loaded.ScratchDir != "" {
			merged.ScratchDir = loaded.ScratchDir
		}
		if loaded.DefaultCompressionLevel != 0 {
			merged.DefaultCompressionLevel = loaded.DefaultCompressionLevel
		}
	}

	merged.ApplyDefaults()
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadDirectory finds and loads configuration from dir. A nonexistent dir
// is not an error: the daemon can run entirely on defaults.
func LoadDirectory(dir string) (*Config, error) {
	exists, err := util.DirExists(dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return LoadConfigFiles(nil)
	}

	paths, err := RecursiveFindConfFiles(dir)
	if err != nil {
		return nil, err
	}
	return LoadConfigFiles(paths)
}
