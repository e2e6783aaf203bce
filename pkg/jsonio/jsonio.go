// Package jsonio provides JSON file reading and writing helpers built on
// goccy/go-json for fast serialization.
package jsonio

import (
	"os"

	gojson "github.com/goccy/go-json"

	"github.com/dperussina/code-library/pkg/errors"
)

// ReadFile reads a JSON file and unmarshals it into v.
func ReadFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrorTypeNotFound, "file not found: %s", path)
		}
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to read %s", path)
	}

	if err := gojson.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeParse, "invalid JSON in %s", path)
	}

	return nil
}

// ReadMap reads a JSON object file into a map.
func ReadMap(path string) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := ReadFile(path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// WriteFile marshals v with the given indent and writes it to path.
// An empty indent produces compact output.
func WriteFile(path string, v interface{}, indent string) error {
	var (
		data []byte
		err  error
	)
	if indent == "" {
		data, err = gojson.Marshal(v)
	} else {
		data, err = gojson.MarshalIndent(v, "", indent)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to marshal JSON")
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to write %s", path)
	}

	return nil
}

// Marshal marshals v to compact JSON without escaping HTML.
func Marshal(v interface{}) ([]byte, error) {
	data, err := gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to marshal JSON")
	}
	return data, nil
}

// Unmarshal unmarshals JSON data into v.
func Unmarshal(data []byte, v interface{}) error {
	if err := gojson.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, errors.ErrorTypeParse, "invalid JSON")
	}
	return nil
}
