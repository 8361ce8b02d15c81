package internalconfig

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/leodido/getdir"
	"github.com/leodido/getdir/config"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Setup points v at the config file to load.
//
// An explicit file (flag first, then the environment variable in opts.EnvVar) wins over the search paths.
func Setup(v *viper.Viper, fs afero.Fs, configFile string, appName string, opts config.Options) {
	v.SetFs(fs)

	if cfgFile := strings.TrimSpace(configFile); cfgFile != "" {
		v.SetConfigFile(cfgFile)

		return
	}

	if envConfigPath := strings.TrimSpace(os.Getenv(opts.EnvVar)); envConfigPath != "" {
		v.SetConfigFile(envConfigPath)

		return
	}

	for _, searchPath := range resolveSearchPaths(fs, opts.SearchPaths, opts.CustomPaths, appName, false) {
		v.AddConfigPath(searchPath)
	}

	// Viper will automatically try different extensions
	v.SetConfigName(opts.ConfigName)
}

// Read loads the config file v was set up for and returns its path.
//
// A missing file is not an error when it was looked up through the search paths.
func Read(v *viper.Viper) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}

		return "", fmt.Errorf("error running with config file: %s: %w", v.ConfigFileUsed(), err)
	}

	return v.ConfigFileUsed(), nil
}

// resolveSearchPaths converts SearchPathType strategies to paths
// When mask=true, returns template paths for descriptions (e.g., $HOME, $PWD)
// When mask=false, returns actual resolved paths for viper
func resolveSearchPaths(fs afero.Fs, pathTypes []config.SearchPathType, customPaths []string, appName string, mask bool) []string {
	var paths []string
	customPathsUsed := false
	hidden := fmt.Sprintf(".%s", appName)

	for _, pathType := range pathTypes {
		switch pathType {
		case config.SearchPathEtc:
			paths = append(paths, path.Join("/etc", appName))

		case config.SearchPathHomeHidden:
			if mask {
				paths = append(paths, path.Join("$HOME", hidden))
			} else if home, _ := os.UserHomeDir(); home != "" {
				paths = append(paths, filepath.Join(home, hidden))
			}

		case config.SearchPathWorkingDirHidden:
			if mask {
				paths = append(paths, path.Join("$PWD", hidden))
			} else if pwd, _ := os.Getwd(); pwd != "" {
				paths = append(paths, filepath.Join(pwd, hidden))
			}

		case config.SearchPathProjectHidden:
			if mask {
				paths = append(paths, path.Join("{project}", hidden))
			} else if project := projectDir(fs, hidden); project != "" {
				paths = append(paths, filepath.Join(project, hidden))
			}

		case config.SearchPathCustom:
			// Add all custom paths at this position only once
			if !customPathsUsed {
				for _, customPath := range customPaths {
					if mask {
						paths = append(paths, strings.ReplaceAll(customPath, "{APP}", appName))
					} else {
						paths = append(paths, resolveSearchPath(customPath, appName))
					}
				}
				customPathsUsed = true
			}
		}
	}

	return paths
}

// projectDir returns the closest ancestor of the working directory holding the hidden directory, or an empty string
func projectDir(fs afero.Fs, hidden string) string {
	dir, err := getdir.New().WithFs(fs).WithTarget(getdir.DirTarget(hidden)).RunReverse()
	if err != nil {
		return ""
	}

	return dir
}

// resolveSearchPath expands environment variables and placeholders in config paths
func resolveSearchPath(searchPath, appName string) string {
	expanded := os.ExpandEnv(searchPath)
	expanded = strings.ReplaceAll(expanded, "{APP}", appName)

	return expanded
}

// Description creates a description based on the search paths
func Description(appName string, opts config.Options) string {
	templatePaths := resolveSearchPaths(nil, opts.SearchPaths, opts.CustomPaths, appName, true)

	if len(templatePaths) == 0 {
		return "config file"
	}

	// Limit to first 3 examples to keep description reasonable
	if len(templatePaths) > 3 {
		templatePaths = templatePaths[:3]
	}

	return fmt.Sprintf("config file (fallbacks to: {%s}/%s.{yaml,json,toml})", strings.Join(templatePaths, ","), opts.ConfigName)
}
