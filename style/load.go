package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a stylesheet encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

// includeKey lists files merged before the rest of the document, later ones winning.
const includeKey = "include"

var (
	ErrUnknownFormat = errors.New("style: unknown stylesheet format")
	ErrIncludeCycle  = errors.New("style: include cycle")
	ErrMalformed     = errors.New("style: malformed stylesheet")
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads a stylesheet file and the files it includes. Include paths are relative to
// the including file; a leading "~" in any path is the user's home directory.
func Load(path string) (*Sheet, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("style: resolve %q: %w", path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("style: resolve %q: %w", path, err)
	}
	s := New(filepath.Dir(abs))
	if err := loadInto(s, abs, nil); err != nil {
		return nil, err
	}
	return s, nil
}

func loadInto(dst *Sheet, path string, stack []string) error {
	if slices.Contains(stack, path) {
		return fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(append(stack, path), " -> "))
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("style: read %q: %w", path, err)
	}
	parsed, err := Parse(data, format, filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("style: parse %q: %w", path, err)
	}
	dst.files = append(dst.files, path)

	for _, inc := range parsed.includes {
		if inc, err = homedir.Expand(inc); err != nil {
			return fmt.Errorf("style: include in %q: %w", path, err)
		}
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(filepath.Dir(path), inc)
		}
		if err := loadInto(dst, inc, append(stack, path)); err != nil {
			return err
		}
	}
	dst.merge(parsed)
	return nil
}

// Parse decodes a document. Includes are recorded but not resolved; use Load for that.
func Parse(data []byte, format Format, baseDir string) (*Sheet, error) {
	s := New(baseDir)
	var err error
	switch format {
	case YAML:
		err = parseYAML(s, data)
	case TOML:
		err = parseTOML(s, data)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// parseYAML walks the node tree instead of decoding into a map so key order survives.
func parseYAML(s *Sheet, data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: top level is not a mapping", ErrMalformed)
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name, value := doc.Content[i].Value, doc.Content[i+1]
		if name == includeKey {
			if err := decodeIncludesYAML(s, value); err != nil {
				return err
			}
			continue
		}
		if err := yamlSection(s, name, value); err != nil {
			return err
		}
	}
	return nil
}

func decodeIncludesYAML(s *Sheet, n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		s.includes = append(s.includes, n.Value)
		return nil
	}
	var list []string
	if err := n.Decode(&list); err != nil {
		return fmt.Errorf("%w: %s must be a list of paths: %v", ErrMalformed, includeKey, err)
	}
	s.includes = append(s.includes, list...)
	return nil
}

func yamlSection(s *Sheet, section string, n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: section %q is not a mapping", ErrMalformed, section)
	}
	if len(n.Content) == 0 {
		s.ensure(section)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]
		if value.Kind == yaml.MappingNode {
			if err := yamlSection(s, section+"."+key, value); err != nil {
				return err
			}
			continue
		}
		var v any
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("%w: %s.%s: %v", ErrMalformed, section, key, err)
		}
		s.Set(section, key, v)
	}
	return nil
}

// parseTOML decodes into maps; TOML tables carry no order, so keys are sorted.
func parseTOML(s *Sheet, data []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for _, name := range sortedKeys(doc) {
		value := doc[name]
		if name == includeKey {
			switch t := value.(type) {
			case string:
				s.includes = append(s.includes, t)
			case []any:
				for _, it := range t {
					p, ok := it.(string)
					if !ok {
						return fmt.Errorf("%w: %s must be a list of paths", ErrMalformed, includeKey)
					}
					s.includes = append(s.includes, p)
				}
			default:
				return fmt.Errorf("%w: %s must be a list of paths", ErrMalformed, includeKey)
			}
			continue
		}
		table, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: section %q is not a table", ErrMalformed, name)
		}
		tomlSection(s, name, table)
	}
	return nil
}

func tomlSection(s *Sheet, section string, table map[string]any) {
	if len(table) == 0 {
		s.ensure(section)
	}
	for _, key := range sortedKeys(table) {
		if sub, ok := table[key].(map[string]any); ok {
			tomlSection(s, section+"."+key, sub)
			continue
		}
		s.Set(section, key, table[key])
	}
}

func (s *Sheet) ensure(section string) {
	if _, ok := s.sections[section]; !ok {
		s.sections[section] = make(map[string]any)
		s.sorder = append(s.sorder, section)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
