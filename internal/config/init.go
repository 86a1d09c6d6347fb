package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# assemble configuration
layout: default

layouts:
  - src/views/layouts/*
views:
  - src/views/**/*
materials:
  - src/materials/**/*
data:
  - src/data/**/*.yml
docs:
  - src/docs/**/*.md

src:
  - src

dest: dist
extension: .html

buildData:
  project: My Project

# destMap:
#   guides: help/guides

# autoModule: src/views/docs/**/*
# moduleWrapper: src/views/layouts/includes/module.html

logging:
  level: info
  format: text
`

// Init writes a starter configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
