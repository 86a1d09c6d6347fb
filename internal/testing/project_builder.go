package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// ProjectBuilder provides a fluent interface for laying out a source
// tree under a base directory.
type ProjectBuilder struct {
	t       *testing.T
	baseDir string
}

// NewProjectBuilder creates a project builder rooted at baseDir.
func NewProjectBuilder(t *testing.T, baseDir string) *ProjectBuilder {
	return &ProjectBuilder{t: t, baseDir: baseDir}
}

// WithFile writes an arbitrary file relative to the project root.
func (pb *ProjectBuilder) WithFile(relativePath, content string) *ProjectBuilder {
	pb.t.Helper()
	fullPath := filepath.Join(pb.baseDir, relativePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), testDirPermissions); err != nil {
		pb.t.Fatalf("Failed to create directory for %s: %v", relativePath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), testFilePermissions); err != nil {
		pb.t.Fatalf("Failed to write %s: %v", relativePath, err)
	}
	return pb
}

// WithConfig writes the configuration file at the project root.
func (pb *ProjectBuilder) WithConfig(content string) *ProjectBuilder {
	return pb.WithFile("assemble.yaml", content)
}

// WithLayout writes a layout template under src/views/layouts.
func (pb *ProjectBuilder) WithLayout(name, content string) *ProjectBuilder {
	return pb.WithFile(filepath.Join("src", "views", "layouts", name), content)
}

// WithView writes a view under src/views.
func (pb *ProjectBuilder) WithView(relativePath, content string) *ProjectBuilder {
	return pb.WithFile(filepath.Join("src", "views", relativePath), content)
}

// WithData writes a data file under src/data.
func (pb *ProjectBuilder) WithData(name, content string) *ProjectBuilder {
	return pb.WithFile(filepath.Join("src", "data", name), content)
}

// WithMaterial writes a material partial under src/materials.
func (pb *ProjectBuilder) WithMaterial(relativePath, content string) *ProjectBuilder {
	return pb.WithFile(filepath.Join("src", "materials", relativePath), content)
}

// WithDoc writes a markdown document under src/docs.
func (pb *ProjectBuilder) WithDoc(name, content string) *ProjectBuilder {
	return pb.WithFile(filepath.Join("src", "docs", name), content)
}
