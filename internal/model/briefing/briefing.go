package briefing

import (
	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/internal/model/persona"
)

// Result is the answer set for one question in one run. Provider failures
// appear as displayable error text under the provider's key; a Result is
// immutable once produced.
type Result struct {
	Question string            `json:"question"`
	Answers  map[string]string `json:"answers"`
}

// Entry is one archived briefing run. Persona and competitor snapshots are
// taken at run time so historical stats stay comparable after the live
// configuration changes.
type Entry struct {
	ID          string                  `json:"id"`
	Timestamp   string                  `json:"timestamp"`
	Results     []Result                `json:"data"`
	Personas    []persona.Persona       `json:"personas"`
	Competitors []competitor.Competitor `json:"competitors"`
}
