package domain

import "encoding/json"

// DefaultRuleSetID is the id of the rule set synthesized for saves that
// predate the rule-set schema.
const DefaultRuleSetID = "default"

// DefaultRuleSetName is the display name of the synthesized rule set.
const DefaultRuleSetName = "通用实体"

type GlobalVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FieldDef is one attribute definition inside a rule set.
type FieldDef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// RuleSet is a named, ordered collection of attribute definitions that
// entities bind to via their schemaId.
type RuleSet struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Fields []FieldDef `json:"fields"`
}

type LoreEntry struct {
	Keys    string `json:"keys"`
	Content string `json:"content"`
	Mode    string `json:"mode"`
}

// Entity is a schema-bound actor of the simulation. Its Stats keys are
// governed by the rule set referenced by SchemaID.
type Entity struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	SchemaID string            `json:"schemaId"`
	Logo     string            `json:"logo"`
	Color    string            `json:"color"`
	Desc     string            `json:"desc"`
	Stats    map[string]string `json:"stats"`
}

type EventImpact struct {
	TargetID   string `json:"targetId"`
	TargetName string `json:"targetName"`
	AttrKey    string `json:"attrKey"`
	AttrLabel  string `json:"attrLabel"`
	Change     string `json:"change"`
}

type TimelineEvent struct {
	EntityID  string        `json:"entityId"`
	TimeStart string        `json:"timeStart"`
	TimeEnd   string        `json:"timeEnd"`
	Summary   string        `json:"summary"`
	Content   string        `json:"content"`
	Impacts   []EventImpact `json:"impacts"`
	IsOpen    bool          `json:"isOpen"`
}

type Turn struct {
	ID        int             `json:"id"`
	TimeRange string          `json:"timeRange"`
	Events    []TimelineEvent `json:"events"`
}

// GameState is the current persisted document schema. MapData is opaque
// to the backend and passed through untouched.
type GameState struct {
	GlobalVars         []GlobalVar     `json:"globalVars"`
	RuleSets           []RuleSet       `json:"ruleSets"`
	Lorebook           []LoreEntry     `json:"lorebook"`
	Entities           []Entity        `json:"entities"`
	MapData            json.RawMessage `json:"mapData,omitempty"`
	Timeline           []Turn          `json:"timeline"`
	CurrentTurnPending []TimelineEvent `json:"currentTurnPending"`
}
