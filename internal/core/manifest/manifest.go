// Package manifest reads the application package.json to report application and framework identity
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	perr "openship/internal/platform/errors"
	"openship/internal/platform/validate"
)

// FileName is the manifest file looked up in the project directory
const FileName = "package.json"

// FrameworkPackage is the dependency that identifies the framework
const FrameworkPackage = "next"

// FrameworkName is the reported framework name
const FrameworkName = "nextjs"

// Manifest is the subset of package.json the discovery endpoint needs
type Manifest struct {
	Name            string            `json:"name" validate:"required"`
	Version         string            `json:"version" validate:"required,semver"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Application is the reported application identity
type Application struct {
	Name    string `json:"name" example:"my-app"`
	Version string `json:"version" example:"0.1.0"`
}

// Framework is the reported framework identity
// Version is the declared dependency range, e.g. "^14.2.3"
type Framework struct {
	Name    string `json:"name" example:"nextjs"`
	Version string `json:"version,omitempty" example:"14.2.3"`
}

// Path returns the manifest path for a project directory
func Path(projectDir string) string { return filepath.Join(projectDir, FileName) }

// Load reads and validates a package.json
func Load(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, perr.WrapFS(err, "manifest: read %s", path)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return Manifest{}, perr.Wrapf(err, perr.ErrorCodeJSON, "manifest: invalid JSON in %s", path)
	}
	if err := validate.Struct(m); err != nil {
		return Manifest{}, perr.WithOp(err, "manifest.Load")
	}
	return m, nil
}

// Application returns the application identity
func (m Manifest) Application() Application {
	return Application{Name: m.Name, Version: m.Version}
}

// Framework returns the framework identity; runtime dependencies win over dev dependencies
func (m Manifest) Framework() Framework {
	if v, ok := m.Dependencies[FrameworkPackage]; ok {
		return Framework{Name: FrameworkName, Version: v}
	}
	if v, ok := m.DevDependencies[FrameworkPackage]; ok {
		return Framework{Name: FrameworkName, Version: v}
	}
	return Framework{Name: FrameworkName}
}
