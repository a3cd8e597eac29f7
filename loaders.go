package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader retrieves locale definitions used to seed a Translator.
type Loader interface {
	Load() (Locales, error)
}

// LoaderFunc adapters allow bare functions to implement the Loader interface
type LoaderFunc func() (Locales, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Locales, error) {
	return fn()
}

// FileLoader reads locale files in JSON, YAML or TOML form. The top level of
// every file maps locale code to a word tree; trees for the same locale
// across files merge, later files winning on conflicting keys. Locale codes
// are normalized before registration ("en_GB" becomes "en-GB").
type FileLoader struct {
	paths []string
}

var _ Loader = (*FileLoader)(nil)

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Locales, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("i18n: no loader paths configured")
	}

	locales := make(Locales)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		decoded, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}

		for code, words := range decoded {
			code = normalizeLocale(code)
			if code == "" {
				return nil, fmt.Errorf("i18n: empty locale in %s", path)
			}

			if existing, ok := locales[code]; ok {
				mergeWordTrees(existing.Words, words)
				continue
			}
			locales[code] = &Locale{Words: words}
		}
	}

	return locales, nil
}

func decodeLocaleFile(path string, data []byte) (map[string]WordTree, error) {
	var raw map[string]map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	out := make(map[string]WordTree, len(raw))
	for code, words := range raw {
		out[code] = WordTree(words)
	}
	return out, nil
}

// mergeWordTrees merges src into dst, descending where both sides hold a
// subtree and overwriting everything else.
func mergeWordTrees(dst, src WordTree) {
	for key, value := range src {
		srcTree, srcOK := subtree(value)
		dstTree, dstOK := subtree(dst[key])
		if srcOK && dstOK {
			mergeWordTrees(dstTree, srcTree)
			continue
		}
		dst[key] = value
	}
}
