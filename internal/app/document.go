package app

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/suxatcode/nbody-barnes-hut/simulation"
)

// Document is the format bodies are read and written in.
type Document struct {
	Bodies []*simulation.Particle `json:"bodies"`
}

// DecodeDocument reads a Document from r. Bodies without an ID get a random
// one.
func DecodeDocument(r io.Reader) (*Document, error) {
	doc := Document{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode bodies")
	}
	for i, body := range doc.Bodies {
		if body == nil {
			return nil, errors.Errorf("body %d is null", i)
		}
		if len(body.Pos) != 2 {
			return nil, errors.Errorf("body %d: position must have 2 components, got %v", i, body.Pos)
		}
		if len(body.Vel) != 0 && len(body.Vel) != 2 {
			return nil, errors.Errorf("body %d: velocity must have 2 components, got %v", i, body.Vel)
		}
		if body.ID == "" {
			body.ID = uuid.NewString()
		}
	}
	return &doc, nil
}

func EncodeDocument(w io.Writer, doc *Document) error {
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode bodies")
	}
	return nil
}
