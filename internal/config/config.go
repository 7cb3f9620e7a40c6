// Package config loads the YAML configuration of the command line tool: the
// logging setup and a manifest of types to register.
//
//	log:
//	  level: debug
//	  sections: [registry, fresh]
//	types:
//	  - name: source
//	  - name: source.id
//	    type: string
//	    doc: Identifier of the source.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/cottand/streamtype/ilerr"
	"github.com/cottand/streamtype/internal/log"
	"github.com/cottand/streamtype/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var logger = log.For("config")

type Config struct {
	Log   Log         `yaml:"log"`
	Types []TypeEntry `yaml:"types"`
}

type Log struct {
	// Level is one of debug, info, warn, error. Empty keeps the default.
	Level    string   `yaml:"level"`
	Sections []string `yaml:"sections"`
}

// TypeEntry is registered under Name. Type is written in the language of
// parseType, and defaults to a constructor called Name.
type TypeEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Doc  string `yaml:"doc"`
}

// Load reads and validates the configuration file at path
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

func Parse(r io.Reader) (*Config, error) {
	c := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func ParseBytes(data []byte) (*Config, error) {
	return Parse(bytes.NewReader(data))
}

func invalid(field, reason string) ilerr.IleError {
	return ilerr.New(ilerr.NewInvalidConfig{Field: field, Reason: reason})
}

// validate returns the first problem found and logs every other one
func (c *Config) validate() error {
	var errs *ilerr.Errors
	if _, err := c.Log.parseLevel(); err != nil {
		errs = errs.With(err)
	}
	for i, entry := range c.Types {
		if entry.Name == "" {
			errs = errs.With(invalid(fmt.Sprintf("types[%d].name", i), "must not be empty"))
		}
		if entry.Type == "" {
			continue
		}
		if reason := checkType(entry.Type); reason != "" {
			errs = errs.With(invalid(fmt.Sprintf("types[%d].type", i), reason))
		}
	}
	if !errs.HasError() {
		return nil
	}
	if len(errs.Errors()) > 1 {
		logger.Warn("invalid configuration", "errors", errs)
	}
	return errs.Errors()[0]
}

// SlogLevel parses Level, defaulting to info
func (l Log) SlogLevel() (slog.Level, error) {
	level, err := l.parseLevel()
	if err != nil {
		return 0, err
	}
	return level, nil
}

func (l Log) parseLevel() (slog.Level, ilerr.IleError) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, invalid("log.level", fmt.Sprintf("unknown level '%s'", l.Level))
	}
	return level, nil
}

// Apply configures the process-wide logger
func (l Log) Apply() error {
	level, err := l.SlogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if len(l.Sections) > 0 {
		log.EnableSections(l.Sections...)
	}
	return nil
}

// Thunk builds the term an entry describes. A dotted entry without a type
// is a unit field.
func (e TypeEntry) Thunk() types.Thunk {
	expr := e.Type
	switch {
	case expr == "" && strings.Contains(e.Name, "."):
		return types.MakeUnit
	case expr == "":
		expr = e.Name
	}
	return func() *types.Type {
		return parseType(expr, make(map[string]*types.Type))
	}
}

// parseType reads the small type language of the manifest:
//
//	int, float, string, bool, unit  ground types and unit
//	'a                              a variable, shared by every 'a of the entry
//	[T]                             list of T
//	T?                              nullable T
//	name                            nominal constructor without parameters
func parseType(expr string, vars map[string]*types.Type) *types.Type {
	expr = strings.TrimSpace(expr)
	switch {
	case strings.HasSuffix(expr, "?"):
		return types.MakeNullable(parseType(strings.TrimSuffix(expr, "?"), vars))
	case strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]"):
		return types.MakeList(parseType(expr[1:len(expr)-1], vars))
	case strings.HasPrefix(expr, "'"):
		if v, ok := vars[expr]; ok {
			return v
		}
		v := types.MakeVar(nil, types.Unbounded)
		vars[expr] = v
		return v
	case expr == "unit":
		return types.MakeUnit()
	case slices.Contains(groundNames, expr):
		return types.MakeGround(expr)
	}
	return types.MakeConstr(expr)
}

// checkType returns why expr cannot be read by parseType, or ""
func checkType(expr string) string {
	expr = strings.TrimSpace(expr)
	switch {
	case expr == "":
		return "empty type"
	case strings.HasSuffix(expr, "?"):
		return checkType(strings.TrimSuffix(expr, "?"))
	case strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]"):
		return checkType(expr[1 : len(expr)-1])
	case strings.ContainsAny(expr, "[]?"):
		return fmt.Sprintf("unexpected bracket or '?' in '%s'", expr)
	case expr == "'":
		return "variable without a name"
	}
	return ""
}

var groundNames = []string{types.GroundInt, types.GroundFloat, types.GroundString, types.GroundBool}

// RegisterTypes registers every entry of the manifest, in order, so that
// dotted entries extend the entries before them
func (c *Config) RegisterTypes(r *types.Registry) {
	for _, entry := range c.Types {
		r.RegisterWithDoc(entry.Name, entry.Doc, entry.Thunk())
	}
}
