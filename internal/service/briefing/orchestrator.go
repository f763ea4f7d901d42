package briefing

import (
	"context"
	"errors"
	"fmt"
	"log"

	model "github.com/rokhoon/geo-briefing/internal/model/briefing"
	"github.com/rokhoon/geo-briefing/internal/model/competitor"
	"github.com/rokhoon/geo-briefing/internal/model/history"
	"github.com/rokhoon/geo-briefing/internal/model/persona"
	"github.com/rokhoon/geo-briefing/internal/model/question"
	"github.com/rokhoon/geo-briefing/internal/service/provider"
)

var ErrNoQuestions = errors.New("no questions configured")

// Progress is invoked after each question completes, with the number of
// questions done so far out of total.
type Progress func(completed, total int, question string)

// Orchestrator drives one briefing run: every configured question is sent
// to every provider in order, and the completed batch is archived together
// with the persona and competitor snapshots active at run time.
type Orchestrator struct {
	providers   []provider.Client
	questions   *question.Store
	personas    *persona.Store
	competitors *competitor.Store
	history     *history.Store
}

// New wires the orchestrator to its providers and backing stores.
func New(providers []provider.Client, questions *question.Store, personas *persona.Store, competitors *competitor.Store, hist *history.Store) *Orchestrator {
	return &Orchestrator{
		providers:   providers,
		questions:   questions,
		personas:    personas,
		competitors: competitors,
		history:     hist,
	}
}

// CheckReady reports the error that would abort a run before any provider
// call: an empty question list or an unusable provider credential.
func (o *Orchestrator) CheckReady() error {
	if len(o.questions.Load()) == 0 {
		return ErrNoQuestions
	}
	for _, p := range o.providers {
		if err := p.Ready(); err != nil {
			return fmt.Errorf("provider %s not configured: %w", p.Name(), err)
		}
	}
	return nil
}

// Run executes the full question list sequentially. Credentials are checked
// once before the first call; past that point a provider failure shows up
// as error text inside the result, never as a dropped question. On
// completion the run is appended to history and the stored entry returned.
func (o *Orchestrator) Run(ctx context.Context, progress Progress) ([]model.Result, model.Entry, error) {
	if err := o.CheckReady(); err != nil {
		return nil, model.Entry{}, err
	}

	questions := o.questions.Load()
	prompts := o.personas.ActivePrompts()

	results := make([]model.Result, 0, len(questions))
	for i, q := range questions {
		answers := make(map[string]string, len(o.providers))
		for _, p := range o.providers {
			answers[p.Name()] = p.Ask(ctx, q, prompts)
		}
		results = append(results, model.Result{Question: q, Answers: answers})

		if progress != nil {
			progress(i+1, len(questions), q)
		}
	}

	entry, err := o.history.Append(results, o.personas.Active(), o.competitors.Load())
	if err != nil {
		return results, model.Entry{}, fmt.Errorf("archive briefing run: %w", err)
	}

	log.Printf("[briefing] run complete: %d questions, %d providers, archived as %s",
		len(questions), len(o.providers), entry.Timestamp)
	return results, entry, nil
}
