package mlkit

import (
	"encoding/gob"
	"os"

	"go.uber.org/zap"

	"github.com/dperussina/code-library/pkg/errors"
	"github.com/dperussina/code-library/pkg/logger"
)

// SaveModel serializes a model to path with gob. The model's type must be
// gob-encodable (exported fields).
func SaveModel(path string, model interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to create %s", path)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(model); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeData, "failed to encode model to %s", path)
	}

	logger.Info("model saved", zap.String("path", path))
	return nil
}

// LoadModel deserializes a model from path into the given pointer.
func LoadModel(path string, into interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrorTypeNotFound, "model file not found: %s", path)
		}
		return errors.Wrapf(err, errors.ErrorTypeFile, "failed to open %s", path)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(into); err != nil {
		return errors.Wrapf(err, errors.ErrorTypeParse, "failed to decode model from %s", path)
	}

	logger.Info("model loaded", zap.String("path", path))
	return nil
}
