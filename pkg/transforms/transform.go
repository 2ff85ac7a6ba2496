package transforms

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// TransformDefinition overrides string fields of any struct whose fields equal every Match entry.
// Type limits it to one struct type, for example ctdf.TransitLeg.
type TransformDefinition struct {
	Type  string            `yaml:"type"`
	Match map[string]string `yaml:"match"`
	Data  map[string]string `yaml:"data"`
}

var (
	transformsMutex sync.RWMutex
	transforms      []*TransformDefinition
)

func Setup(definitions []*TransformDefinition) {
	transformsMutex.Lock()
	defer transformsMutex.Unlock()

	transforms = definitions
}

// LoadFile replaces the active definitions with the YAML list in path. An empty path clears them.
func LoadFile(path string) error {
	if path == "" {
		Setup(nil)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading transforms: %w", err)
	}

	var definitions []*TransformDefinition
	if err := yaml.Unmarshal(data, &definitions); err != nil {
		return fmt.Errorf("parsing transforms: %w", err)
	}

	Setup(definitions)

	log.Info().Int("count", len(definitions)).Str("path", path).Msg("Loaded transforms")

	return nil
}

// Transform applies the active definitions to input and everything reachable from it.
// Input must be a pointer, or a slice of pointers, for changes to be visible to the caller.
func Transform(input interface{}) {
	transformsMutex.RLock()
	defer transformsMutex.RUnlock()

	if len(transforms) == 0 || input == nil {
		return
	}

	transformValue(reflect.ValueOf(input))
}

func transformValue(value reflect.Value) {
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !value.IsNil() {
			transformValue(value.Elem())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			transformValue(value.Index(i))
		}
	case reflect.Struct:
		if value.CanSet() {
			for _, definition := range transforms {
				definition.apply(value)
			}
		}

		for i := 0; i < value.NumField(); i++ {
			if value.Type().Field(i).IsExported() {
				transformValue(value.Field(i))
			}
		}
	}
}

func (t *TransformDefinition) apply(value reflect.Value) {
	if t.Type != "" && t.Type != strings.TrimPrefix(value.Type().String(), "*") {
		return
	}

	if len(t.Match) == 0 {
		return
	}

	for key, expected := range t.Match {
		field := value.FieldByName(key)
		if !field.IsValid() || field.Kind() != reflect.String || field.String() != expected {
			return
		}
	}

	for key, replacement := range t.Data {
		field := value.FieldByName(key)
		if field.IsValid() && field.Kind() == reflect.String && field.CanSet() {
			field.SetString(replacement)
		}
	}
}
