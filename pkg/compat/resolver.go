package compat

import (
	"encoding/json"
	"fmt"

	"levantd/pkg/domain"
)

// rawEntity accepts the current entity shape plus legacy fields: a
// top-level "type" attribute that modern documents keep inside stats.
type rawEntity struct {
	domain.Entity
	Type string `json:"type"`
}

// rawEvent accepts the legacy "factionId" binding alongside the current
// "entityId".
type rawEvent struct {
	domain.TimelineEvent
	FactionID string `json:"factionId"`
}

type rawTurn struct {
	ID        int        `json:"id"`
	TimeRange string     `json:"timeRange"`
	Events    []rawEvent `json:"events"`
}

// rawDocument is the union of every persisted schema vintage.
type rawDocument struct {
	GlobalVars         []domain.GlobalVar `json:"globalVars"`
	GlobalVarsLegacy   []domain.GlobalVar `json:"global_vars"`
	RuleSets           []domain.RuleSet   `json:"ruleSets"`
	StatSchema         []domain.FieldDef  `json:"stat_schema"`
	SchemaAlias        []domain.FieldDef  `json:"schema"`
	Lorebook           []domain.LoreEntry `json:"lorebook"`
	Entities           []rawEntity        `json:"entities"`
	Players            []rawEntity        `json:"players"`
	MapData            json.RawMessage    `json:"mapData"`
	Timeline           []rawTurn          `json:"timeline"`
	CurrentTurnPending []rawEvent         `json:"currentTurnPending"`
}

// Resolve upgrades a persisted document of unknown vintage to the current
// schema. It never partially applies: the input bytes are read once and a
// fresh document is returned. After resolution every entity's schema
// binding references an existing rule set.
func Resolve(data []byte) (*domain.GameState, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing save document: %w", err)
	}

	state := &domain.GameState{
		GlobalVars:         raw.GlobalVars,
		RuleSets:           raw.RuleSets,
		Lorebook:           raw.Lorebook,
		Entities:           upgradeEntities(raw.Entities),
		MapData:            raw.MapData,
		Timeline:           upgradeTimeline(raw.Timeline),
		CurrentTurnPending: upgradeEvents(raw.CurrentTurnPending),
	}

	if state.GlobalVars == nil {
		state.GlobalVars = raw.GlobalVarsLegacy
	}
	if state.Entities == nil {
		state.Entities = upgradeEntities(raw.Players)
	}

	if len(state.RuleSets) == 0 {
		state.RuleSets = []domain.RuleSet{synthesizeRuleSet(raw)}
	}
	rebindEntities(state)

	return state, nil
}

// synthesizeRuleSet builds the single default rule set for documents that
// predate rule sets, taking its fields from whichever legacy schema field
// existed: stat_schema first, then the older schema alias.
func synthesizeRuleSet(raw rawDocument) domain.RuleSet {
	fields := raw.StatSchema
	if fields == nil {
		fields = raw.SchemaAlias
	}
	if fields == nil {
		fields = []domain.FieldDef{}
	}
	return domain.RuleSet{
		ID:     domain.DefaultRuleSetID,
		Name:   domain.DefaultRuleSetName,
		Fields: fields,
	}
}

// rebindEntities repairs dangling schema bindings: any entity whose
// schemaId is missing or unknown is rebound to the first rule set in
// document order. Stable, never arbitrary.
func rebindEntities(state *domain.GameState) {
	if len(state.RuleSets) == 0 {
		return
	}

	valid := make(map[string]bool, len(state.RuleSets))
	for _, rs := range state.RuleSets {
		valid[rs.ID] = true
	}

	fallback := state.RuleSets[0].ID
	for i := range state.Entities {
		if !valid[state.Entities[i].SchemaID] {
			state.Entities[i].SchemaID = fallback
		}
	}
}

func upgradeEntities(raw []rawEntity) []domain.Entity {
	if raw == nil {
		return nil
	}
	out := make([]domain.Entity, len(raw))
	for i, e := range raw {
		entity := e.Entity
		if e.Type != "" {
			if entity.Stats == nil {
				entity.Stats = map[string]string{}
			}
			if _, ok := entity.Stats["type"]; !ok {
				entity.Stats["type"] = e.Type
			}
		}
		out[i] = entity
	}
	return out
}

func upgradeEvents(raw []rawEvent) []domain.TimelineEvent {
	if raw == nil {
		return nil
	}
	out := make([]domain.TimelineEvent, len(raw))
	for i, e := range raw {
		event := e.TimelineEvent
		if event.EntityID == "" {
			event.EntityID = e.FactionID
		}
		out[i] = event
	}
	return out
}

func upgradeTimeline(raw []rawTurn) []domain.Turn {
	if raw == nil {
		return nil
	}
	out := make([]domain.Turn, len(raw))
	for i, t := range raw {
		out[i] = domain.Turn{
			ID:        t.ID,
			TimeRange: t.TimeRange,
			Events:    upgradeEvents(t.Events),
		}
	}
	return out
}
