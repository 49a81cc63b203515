package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrNoSpawn = errors.New("levels: no player spawn")

// Level is a tile grid. Row 0 is the top row; a non-zero tile is solid on
// layers marked as physics layers.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

// Entity is a placed object in tile coordinates.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: bad size %dx%d", l.Width, l.Height)
	}
	var errs []error
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			errs = append(errs, fmt.Errorf("levels: layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height))
		}
	}
	return errors.Join(errs...)
}

// Spawn returns the tile of the first entity of type typ.
func (l *Level) Spawn(typ string) (Entity, error) {
	for _, e := range l.Entities {
		if e.Type == typ {
			return e, nil
		}
	}
	return Entity{}, fmt.Errorf("%w: %q", ErrNoSpawn, typ)
}

// LoadLevel reads a level from disk when path exists, otherwise from the
// embedded set.
func LoadLevel(path string) (*Level, error) {
	if data, err := os.ReadFile(path); err == nil {
		return decode(path, data)
	}
	return LoadLevelFromFS(path)
}

func LoadLevelFromFS(name string) (*Level, error) {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, "levels/")
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decode(clean, data)
}

func decode(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}
