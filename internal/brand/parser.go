package brand

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Extensions lists the file extensions a brand package may use, in lookup order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// ParseFile reads, decodes and validates the brand package at path.
func ParseFile(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data according to the extension of path and validates the result.
func Parse(path string, data []byte) (*Package, error) {
	var pkg Package

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &pkg); err != nil {
			return nil, themeerrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &pkg); err != nil {
			line := 0
			if decodeErr, ok := err.(*toml.DecodeError); ok {
				line, _ = decodeErr.Position()
			}
			return nil, themeerrors.NewParseError(path, line, err)
		}
	default:
		return nil, themeerrors.NewParseError(path, 0, fmt.Errorf("unsupported brand file extension %q", filepath.Ext(path)))
	}

	if err := Validate(&pkg); err != nil {
		return nil, err
	}

	return &pkg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
