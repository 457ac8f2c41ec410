package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/progress"
)

// CurrentVersion is the document format version written by Encode.
const CurrentVersion = 1

var (
	// ErrInvalidDocument is returned by Decode for documents that are not
	// well-formed JSON or fail schema validation.
	ErrInvalidDocument = errors.New("invalid progress document")

	// ErrFutureVersion is returned by Decode for documents written by a newer
	// release.
	ErrFutureVersion = errors.New("progress document version is newer than supported")
)

// document is the persisted envelope.
type document struct {
	Version int             `json:"version"`
	State   *progress.State `json:"state"`
}

// Encode serializes s into the current document format.
func Encode(s *progress.State) ([]byte, error) {
	data, err := json.Marshal(document{Version: CurrentVersion, State: s})
	if err != nil {
		return nil, fmt.Errorf("encode progress document: %w", err)
	}
	return data, nil
}

// Decode parses a persisted document, migrating older versions. The returned
// state is normalized.
func Decode(data []byte) (*progress.State, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	root, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidDocument)
	}

	// Version 0 documents are the bare state without an envelope.
	if _, versioned := root["version"]; !versioned {
		if _, wrapped := root["state"]; !wrapped {
			root = map[string]any{"version": float64(0), "state": root}
		}
	}

	schema, err := documentSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	version := int(root["version"].(float64))
	if version > CurrentVersion {
		return nil, fmt.Errorf("%w: got %d, support %d", ErrFutureVersion, version, CurrentVersion)
	}

	// Re-marshal the validated state so migration and decoding share one path.
	raw, err := json.Marshal(root["state"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	raw, err = migrate(version, raw)
	if err != nil {
		return nil, err
	}

	s := progress.NewState()
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	s.Normalize()
	return s, nil
}

// migrate upgrades a state payload from version to CurrentVersion.
func migrate(version int, raw []byte) ([]byte, error) {
	if version == 0 {
		// Version 0 had no todayDate; the today counter belonged to the last
		// active day.
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		if _, ok := m["todayDate"]; !ok {
			m["todayDate"] = m["lastActiveDate"]
		}
		out, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("migrate v0 document: %w", err)
		}
		raw = out
	}
	return raw, nil
}

// NewRecord encodes s into a record ready to be saved under key.
func NewRecord(key, writerID string, s *progress.State) (*Record, error) {
	data, err := Encode(s)
	if err != nil {
		return nil, err
	}
	return &Record{
		Key:       key,
		Version:   CurrentVersion,
		Data:      data,
		WriterID:  writerID,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// LoadOption configures LoadState.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fresh func() *progress.State
}

// WithFreshState sets the constructor used when no usable document exists.
func WithFreshState(fn func() *progress.State) LoadOption {
	return func(o *loadOptions) { o.fresh = fn }
}

// LoadState reads the document under key. A missing document yields a fresh
// state. A document that cannot be decoded is logged and replaced by a fresh
// state. Only repository errors are returned, so the caller never overwrites
// a document it failed to read.
func LoadState(ctx context.Context, repo DocumentRepo, key string, log *zap.Logger, opts ...LoadOption) (*progress.State, error) {
	o := loadOptions{fresh: progress.NewState}
	for _, opt := range opts {
		opt(&o)
	}

	rec, err := repo.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load progress document %q: %w", key, err)
	}
	if rec == nil {
		log.Debug("no progress document, starting fresh", zap.String("key", key))
		return o.fresh(), nil
	}

	s, err := Decode(rec.Data)
	if err != nil {
		log.Warn("discarding unreadable progress document",
			zap.String("key", key),
			zap.String("writer", rec.WriterID),
			zap.Error(err))
		return o.fresh(), nil
	}
	return s, nil
}

const schemaURL = "schema://progress-document.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchemaJSON), &def); err != nil {
			schemaErr = fmt.Errorf("parse document schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add document schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

const documentSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "state"],
  "properties": {
    "version": {"type": "integer", "minimum": 0},
    "state": {"$ref": "#/$defs/state"}
  },
  "$defs": {
    "count": {"type": "integer", "minimum": 0},
    "day": {"type": "string", "pattern": "^(\\d{4}-\\d{2}-\\d{2})?$"},
    "bucket": {
      "type": "object",
      "required": ["date"],
      "properties": {
        "date": {"$ref": "#/$defs/day"},
        "wordsLearned": {"$ref": "#/$defs/count"},
        "wordsReviewed": {"$ref": "#/$defs/count"},
        "exercisesCompleted": {"$ref": "#/$defs/count"},
        "correctAnswers": {"$ref": "#/$defs/count"},
        "timeSpentMinutes": {"$ref": "#/$defs/count"}
      }
    },
    "state": {
      "type": "object",
      "properties": {
        "currentStreak": {"$ref": "#/$defs/count"},
        "longestStreak": {"$ref": "#/$defs/count"},
        "totalWordsLearned": {"$ref": "#/$defs/count"},
        "totalExercisesCompleted": {"$ref": "#/$defs/count"},
        "gamesPlayed": {"$ref": "#/$defs/count"},
        "perfectGames": {"$ref": "#/$defs/count"},
        "dailyBuckets": {
          "type": ["array", "null"],
          "items": {"$ref": "#/$defs/bucket"}
        },
        "unlockedAchievementIds": {
          "type": ["array", "null"],
          "items": {"type": "string", "minLength": 1}
        },
        "lastActiveDate": {"$ref": "#/$defs/day"},
        "dailyGoal": {"$ref": "#/$defs/count"},
        "todayWordsLearned": {"$ref": "#/$defs/count"},
        "todayDate": {"$ref": "#/$defs/day"},
        "consecutiveCorrectAnswers": {"$ref": "#/$defs/count"},
        "lastUnlockedAchievementId": {"type": ["string", "null"]},
        "lastWordIndex": {
          "type": ["object", "null"],
          "additionalProperties": {"$ref": "#/$defs/count"}
        }
      }
    }
  }
}`
