package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tally/internal/domain"
	"gopkg.in/yaml.v3"
)

// yamlFormatVersion is bumped whenever yamlRecordSet changes shape.
const yamlFormatVersion = 1

type yamlRecordSet struct {
	Version       int         `yaml:"version"`
	RoundingGrain int         `yaml:"rounding_grain"`
	GoalMinutes   float64     `yaml:"goal_minutes"`
	TestMode      bool        `yaml:"test_mode"`
	Events        []yamlEvent `yaml:"events"`
}

type yamlEvent struct {
	TS   int64  `yaml:"ts"`
	Kind string `yaml:"kind"`
	Task string `yaml:"task,omitempty"`
}

// EncodeYAML renders rs in the YAML file format, events in timestamp order.
func EncodeYAML(rs *domain.RecordSet) ([]byte, error) {
	doc := yamlRecordSet{
		Version:       yamlFormatVersion,
		RoundingGrain: rs.RoundingGrain,
		GoalMinutes:   rs.GoalMinutes,
		TestMode:      rs.TestMode,
		Events:        make([]yamlEvent, 0, len(rs.Events)),
	}
	for _, ts := range rs.Timestamps() {
		label := rs.Events[ts]
		doc.Events = append(doc.Events, yamlEvent{TS: ts, Kind: string(label.Kind()), Task: label.TaskName()})
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal record yaml: %w", err)
	}
	return out, nil
}

// DecodeYAML parses the YAML file format. Unknown fields, a foreign
// version, or unreadable labels all report ErrSchemaMismatch.
func DecodeYAML(raw []byte) (*domain.RecordSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc yamlRecordSet
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse record yaml: %v: %w", err, ErrSchemaMismatch)
	}
	if doc.Version != yamlFormatVersion {
		return nil, fmt.Errorf("record yaml version %d: %w", doc.Version, ErrSchemaMismatch)
	}

	rs := domain.NewRecordSet()
	rs.RoundingGrain = doc.RoundingGrain
	rs.GoalMinutes = doc.GoalMinutes
	rs.TestMode = doc.TestMode
	if err := validateSettings(&rs); err != nil {
		return nil, err
	}
	for _, ev := range doc.Events {
		label, err := domain.ParseLabel(ev.Kind, ev.Task)
		if err != nil {
			return nil, fmt.Errorf("event at %d: %v: %w", ev.TS, err, ErrSchemaMismatch)
		}
		rs.Events[ev.TS] = label
	}
	return &rs, nil
}

// YAMLRecordStore keeps the record set in a single YAML file.
type YAMLRecordStore struct {
	path string
}

func NewYAMLRecordStore(path string) *YAMLRecordStore {
	return &YAMLRecordStore{path: path}
}

func (s *YAMLRecordStore) Load(ctx context.Context) (*domain.RecordSet, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("record file %s: %w", s.path, ErrNotFound)
		}
		return nil, fmt.Errorf("read record file: %w", err)
	}
	return DecodeYAML(raw)
}

// Save writes a sibling temp file and renames it over the record file.
func (s *YAMLRecordStore) Save(ctx context.Context, rs *domain.RecordSet) error {
	out, err := EncodeYAML(rs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace record file: %w", err)
	}
	return nil
}
