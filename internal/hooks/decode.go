package internalhooks

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leodido/getdir"
	"go.uber.org/zap/zapcore"
)

// Compose returns the decode hooks needed to turn flags, environment variables, and config file values into the CLI options.
//
// Order matters: comma-separated target lists are converted before single targets.
func Compose() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		StringToTargetSliceHookFunc(","),
		StringToTargetHookFunc(),
		StringToKindHookFunc(),
		StringToDirectionHookFunc(),
		StringToZapcoreLevelHookFunc(),
	)
}

// StringToZapcoreLevelHookFunc creates a decode hook that converts string values
// to zapcore.Level types during configuration unmarshaling.
func StringToZapcoreLevelHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(zapcore.DebugLevel) {
			return data, nil
		}

		level, err := zapcore.ParseLevel(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid string for zapcore.Level '%s': %w", data.(string), err)
		}

		return level, nil
	}
}

// StringToTargetHookFunc creates a decode hook that converts kind:name strings to getdir.Target values.
//
// The name is kept verbatim, surrounding whitespace included.
func StringToTargetHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(getdir.Target{}) {
			return data, nil
		}

		target, err := getdir.ParseTarget(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid string for getdir.Target '%s': %w", data.(string), err)
		}

		return target, nil
	}
}

// StringToTargetSliceHookFunc creates a decode hook that converts sep-separated kind:name strings to a slice of getdir.Target.
//
// Environment variables and scalar config values carry target lists in this form, so every part is trimmed.
// The --target flag hands its values over one by one instead.
func StringToTargetSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf([]getdir.Target{}) {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []getdir.Target{}, nil
		}

		parts := strings.Split(raw, sep)
		targets := make([]getdir.Target, 0, len(parts))
		for _, part := range parts {
			target, err := getdir.ParseTarget(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid string for getdir.Target '%s': %w", part, err)
			}
			targets = append(targets, target)
		}

		return targets, nil
	}
}

// StringToKindHookFunc creates a decode hook that converts string values to getdir.Kind values.
//
// It serves the {kind, name} map form of targets in config files.
func StringToKindHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(getdir.KindDir) {
			return data, nil
		}

		return getdir.ParseKind(data.(string))
	}
}

// StringToDirectionHookFunc creates a decode hook that converts string values to getdir.Direction values.
func StringToDirectionHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(getdir.Down) {
			return data, nil
		}

		needle := strings.ToLower(strings.TrimSpace(data.(string)))
		for direction, ids := range getdir.DirectionIdentifiers() {
			for _, id := range ids {
				if id == needle {
					return direction, nil
				}
			}
		}

		return nil, fmt.Errorf("invalid string for getdir.Direction '%s' (one of: down, up)", data.(string))
	}
}
