package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// LoadAll walks the directory and returns every valid level, sorted by
// Order and then ID. Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]LevelDef, error) {
	levels, err := loadFS(os.DirFS(l.Root), ".", func(p string, err error) {
		log.Warn("skipping level file", "path", path.Join(l.Root, p), "err", err)
	})
	if err != nil {
		return nil, fmt.Errorf("content: walking directory %s: %w", l.Root, err)
	}
	return levels, nil
}

// Validate parses every level file and reports each one that fails,
// joined into one error. Duplicate IDs are reported too.
func (l *Loader) Validate() ([]LevelDef, error) {
	var errs []error
	levels, err := loadFS(os.DirFS(l.Root), ".", func(p string, err error) {
		errs = append(errs, fmt.Errorf("%s: %w", path.Join(l.Root, p), err))
	})
	if err != nil {
		return nil, fmt.Errorf("content: walking directory %s: %w", l.Root, err)
	}

	seen := make(map[string]string, len(levels))
	for _, lvl := range levels {
		if prev, ok := seen[lvl.ID]; ok {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q (also in %s)", lvl.Source, lvl.ID, prev))
			continue
		}
		seen[lvl.ID] = lvl.Source
	}
	return levels, errors.Join(errs...)
}

// Builtin returns the levels compiled into the binary.
func Builtin() []LevelDef {
	levels, err := loadFS(builtinFS, "levels", nil)
	if err != nil {
		// The embedded tree is fixed at build time.
		panic(fmt.Sprintf("content: builtin levels: %v", err))
	}
	return levels
}

// loadFS collects the level files under root. Unreadable or invalid files
// are passed to skip, when set, and left out.
func loadFS(fsys fs.FS, root string, skip func(path string, err error)) ([]LevelDef, error) {
	var levels []LevelDef

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err == nil {
			var level LevelDef
			level, err = ParseLevel(data)
			if err == nil {
				level.Source = p
				levels = append(levels, level)
				return nil
			}
		}
		if skip != nil {
			skip(p, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortLevels(levels)
	return levels, nil
}

func sortLevels(levels []LevelDef) {
	slices.SortStableFunc(levels, func(a, b LevelDef) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.ID, b.ID)
	})
}
