// Package yamlio provides YAML file loading with environment variable
// substitution, and saving.
package yamlio

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dperussina/code-library/pkg/errors"
)

// Load reads a YAML file into v. Occurrences of ${VAR_NAME} in the file
// are replaced with the environment variable's value before parsing;
// unset variables become empty strings.
func Load(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrorTypeNotFound, "file not found: %s", path)
		}
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to read %s", path)
	}

	content := substituteEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(content), v); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeParse, "invalid YAML in %s", path)
	}

	return nil
}

// Save marshals v to YAML and writes it to path.
func Save(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to marshal YAML")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to write %s", path)
	}

	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable
// values. Substitution is a single pass: references inside a variable's
// value are left as-is.
func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
