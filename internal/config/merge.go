package internalconfig

import (
	"maps"
	"strings"

	"github.com/spf13/cobra"
)

// Merge creates the configuration map for a specific command.
//
// Top-level scalar and list settings apply to every command.
// The section named after the command path (e.g. "up:") overrides them.
func Merge(globalSettings map[string]any, c *cobra.Command) map[string]any {
	configToMerge := make(map[string]any)

	for key, value := range globalSettings {
		// Skip command sections
		if _, isMap := value.(map[string]any); !isMap {
			configToMerge[key] = value
		}
	}

	var finalSettings map[string]any
	subpathC := strings.Split(c.CommandPath(), " ")[1:]
	currentLevel := globalSettings

	for _, part := range subpathC {
		settings, ok := currentLevel[part]
		if !ok {
			finalSettings = nil

			break
		}
		settingsMap, isMap := settings.(map[string]any)
		if !isMap {
			// The path is broken by a non-map value
			finalSettings = nil

			break
		}
		currentLevel = settingsMap
		finalSettings = settingsMap
	}

	maps.Copy(configToMerge, finalSettings)

	return configToMerge
}
