package tagcolor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Mikeoo31/cloud-atlas/internal/constants"
)

// LoadColors reads a tag-to-color map from a YAML file.
// A missing or empty file yields an empty map.
func LoadColors(path string) (map[string]string, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}

		return nil, fmt.Errorf("failed to read tag colors: %w", err)
	}

	colors := make(map[string]string)
	if err = yaml.Unmarshal(content, &colors); err != nil {
		return nil, fmt.Errorf("failed to parse tag colors: %w", err)
	}

	return colors, nil
}

// SaveColors writes the map as YAML with sorted keys.
// The file is replaced through a rename, so readers never see a partial write.
func SaveColors(path string, colors map[string]string) error {
	content, err := yaml.Marshal(colors)
	if err != nil {
		return fmt.Errorf("failed to marshal tag colors: %w", err)
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	if err = os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create tag colors folder: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*"+constants.PartFileExtension)
	if err != nil {
		return fmt.Errorf("failed to create temporary tag colors file: %w", err)
	}

	tempPath := tempFile.Name()

	_, err = tempFile.Write(content)
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Chmod(tempPath, constants.DefaultFilePermissions)
	}

	if err == nil {
		err = os.Rename(tempPath, path)
	}

	if err != nil {
		_ = os.Remove(tempPath)

		return fmt.Errorf("failed to write tag colors: %w", err)
	}

	return nil
}
