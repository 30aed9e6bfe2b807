// Package config manages user-level settings stored at ~/.coursekit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template_dir override used to locate the course template tree.
package config
