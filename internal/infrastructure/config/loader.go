package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig holds all loaded configurations
type AppConfig struct {
	Input    *InputConfig
	MoveList *MoveListConfig
}

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadInput loads and validates input.json
func (l *Loader) LoadInput() (*InputConfig, error) {
	data, err := fs.ReadFile(l.fsys, "input.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read input.json: %w", err)
	}

	var cfg InputConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse input.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("input.json: %w", err)
	}

	return &cfg, nil
}

// LoadMoveList loads a move list YAML file
func (l *Loader) LoadMoveList(name string) (*MoveListConfig, error) {
	path := "movelists/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read move list %s: %w", name, err)
	}

	return ParseMoveList(data)
}

// ParseMoveList decodes and validates move list YAML
func ParseMoveList(data []byte) (*MoveListConfig, error) {
	var cfg MoveListConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse move list: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadAll loads input.json and the named move list
func (l *Loader) LoadAll(moveList string) (*AppConfig, error) {
	in, err := l.LoadInput()
	if err != nil {
		return nil, err
	}

	moves, err := l.LoadMoveList(moveList)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Input:    in,
		MoveList: moves,
	}, nil
}
