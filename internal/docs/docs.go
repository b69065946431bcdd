// Package docs serves the OpenAPI description of the API.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPI []byte

type Handler struct {
	yaml []byte
	json []byte
}

// NewHandler decodes the embedded document once so that both
// representations are ready before the first request.
func NewHandler() (*Handler, error) {
	var doc any
	if err := yaml.Unmarshal(openAPI, &doc); err != nil {
		return nil, fmt.Errorf("decode openapi document: %w", err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document as json: %w", err)
	}

	return &Handler{yaml: openAPI, json: b}, nil
}

func (h *Handler) YAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(h.yaml)
}

func (h *Handler) JSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(h.json)
}
