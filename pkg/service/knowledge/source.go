package knowledge

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gsip/pkg/domain/interfaces"
	"github.com/secmon-lab/gsip/pkg/domain/model"
)

// Source is a static, in-memory knowledge resource parsed from a JSON
// document. Key order follows the document: the fuzzy matcher resolves
// first-match-wins, so insertion order is part of the data contract and
// must survive parsing.
type Source struct {
	overviewKeys []string
	overviews    map[string]model.UnitOverview

	maturityKeys []string
	maturities   map[string][]model.MaturityStage

	scorecardKeys []string
	scorecards    map[string]model.UnitScorecard

	actionKeys []string
	actions    map[string][]model.SkillAction
}

var _ interfaces.KnowledgeSource = &Source{}

type sourceDocument struct {
	Overview    json.RawMessage `json:"overview"`
	MaturityMap json.RawMessage `json:"maturity_map"`
	Scorecard   json.RawMessage `json:"scorecard"`
	Actions     json.RawMessage `json:"actions"`
}

// ParseSource builds a Source from the knowledge resource JSON document.
// Missing sub-tables are tolerated and yield empty tables.
func ParseSource(data []byte) (*Source, error) {
	var doc sourceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse knowledge resource")
	}

	src := &Source{
		overviews:  map[string]model.UnitOverview{},
		maturities: map[string][]model.MaturityStage{},
		scorecards: map[string]model.UnitScorecard{},
		actions:    map[string][]model.SkillAction{},
	}

	var err error
	if src.overviewKeys, err = decodeOrdered(doc.Overview, src.overviews); err != nil {
		return nil, goerr.Wrap(err, "invalid overview table")
	}
	if src.maturityKeys, err = decodeOrdered(doc.MaturityMap, src.maturities); err != nil {
		return nil, goerr.Wrap(err, "invalid maturity map table")
	}
	if src.scorecardKeys, err = decodeOrdered(doc.Scorecard, src.scorecards); err != nil {
		return nil, goerr.Wrap(err, "invalid scorecard table")
	}
	if src.actionKeys, err = decodeOrdered(doc.Actions, src.actions); err != nil {
		return nil, goerr.Wrap(err, "invalid actions table")
	}

	return src, nil
}

// decodeOrdered decodes a JSON object into the given map while recording
// key order as it appears in the document. encoding/json maps lose
// ordering, so the object is walked token by token instead.
func decodeOrdered[T any](raw json.RawMessage, into map[string]T) ([]string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read table")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, goerr.New("table must be a JSON object", goerr.V("token", tok))
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read table key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, goerr.New("table key must be a string", goerr.V("token", keyTok))
		}

		var value T
		if err := dec.Decode(&value); err != nil {
			return nil, goerr.Wrap(err, "failed to decode table entry", goerr.V("key", key))
		}

		if _, exists := into[key]; !exists {
			keys = append(keys, key)
		}
		into[key] = value
	}

	return keys, nil
}

func (s *Source) OverviewKeys() []string {
	return append([]string(nil), s.overviewKeys...)
}

func (s *Source) Overview(key string) (model.UnitOverview, bool) {
	v, ok := s.overviews[key]
	return v, ok
}

func (s *Source) MaturityKeys() []string {
	return append([]string(nil), s.maturityKeys...)
}

func (s *Source) Maturity(key string) ([]model.MaturityStage, bool) {
	v, ok := s.maturities[key]
	return v, ok
}

func (s *Source) ScorecardKeys() []string {
	return append([]string(nil), s.scorecardKeys...)
}

func (s *Source) Scorecard(key string) (model.UnitScorecard, bool) {
	v, ok := s.scorecards[key]
	return v, ok
}

func (s *Source) ActionKeys() []string {
	return append([]string(nil), s.actionKeys...)
}

func (s *Source) Actions(key string) ([]model.SkillAction, bool) {
	v, ok := s.actions[key]
	return v, ok
}
