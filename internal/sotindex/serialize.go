package sotindex

import (
	"fmt"

	"github.com/lighthouse-iam/uar-engine/internal/model"
	"gopkg.in/yaml.v3"
)

// wireFormat is the minimal serialization form described in spec §4.5: the
// record list, in the order that reproduces the original insertion
// outcomes, plus the originally computed stats. Using the same codec the
// teacher uses for its own config/document marshaling (gopkg.in/yaml.v3)
// keeps the transport human-inspectable, which matters since a worker
// instance ships this payload across a boundary with no shared memory.
type wireFormat struct {
	Records []model.SoTRecord `yaml:"records"`
	Stats   model.IndexStats  `yaml:"stats"`
}

// Serialize renders the index to its wire form. Deserializing the result
// and re-querying it must behave identically to the original for every
// lookup defined in spec §4.5/§4.6 (round-trip equivalence).
func (idx *Index) Serialize() (string, error) {
	wire := wireFormat{
		Records: idx.Records,
		Stats:   idx.Stats,
	}
	out, err := yaml.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("serialize index: %w", err)
	}
	return string(out), nil
}

// Deserialize rehydrates an Index from its wire form. The three lookup
// maps are rebuilt from the record list (in its stored order), so
// first-occurrence-wins decisions and by_name insertion order are
// reproduced exactly; the stats block is restored verbatim rather than
// recomputed, satisfying the round-trip contract even if a future wire
// revision stores stats that aren't a pure function of the record list.
func Deserialize(payload string) (*Index, error) {
	var wire wireFormat
	if err := yaml.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, fmt.Errorf("DeserializeIndex: %w", err)
	}

	idx := Build(wire.Records)
	idx.Stats = wire.Stats
	return idx, nil
}
