package devtools

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dungeonforge/pkg/game/generator"
)

// WriteYAML serializes the level's content manifest to path. The tile grid
// is excluded; the map dump covers geometry.
func WriteYAML(result *generator.Result, path string) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal level: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write level yaml: %w", err)
	}
	return nil
}
