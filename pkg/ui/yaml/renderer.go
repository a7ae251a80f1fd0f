// Package yaml renders results as YAML documents
package yaml

import (
	"io"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Renderer writes one YAML document per call
type Renderer struct {
	encoder *yaml.Encoder
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = string(code)
	}
	return r.encode(errorObj)
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

// encode flushes after every document so output is not held back until
// the process exits
func (r *Renderer) encode(v interface{}) error {
	if err := r.encoder.Encode(v); err != nil {
		return err
	}
	return r.encoder.Close()
}
