package commands

import (
	"github.com/benefique/cfo-times/pkg/services/config"
	"github.com/benefique/cfo-times/pkg/services/generator"
	"github.com/benefique/cfo-times/pkg/services/registry"
	"github.com/benefique/cfo-times/pkg/store/snapshot"
)

// Env is shared by every command. Settings is filled in by the root command
// before any subcommand runs.
type Env struct {
	Generator    *generator.Generator
	Settings     *config.Settings
	ProfilesFile string
}

// Profiles opens the client profile file: the --profiles-file flag first,
// then the profiles_file setting, then ~/.cfotimes.ini.
func (e *Env) Profiles() (registry.ConfigRegistry, error) {
	path := e.ProfilesFile
	if path == "" && e.Settings != nil {
		path = e.Settings.Profiles
	}
	if path == "" {
		var err error
		if path, err = registry.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return registry.NewConfigRegistry(path)
}

func (e *Env) sourceOptions() snapshot.Options {
	if e.Settings == nil {
		return snapshot.Options{}
	}
	return snapshot.Options{
		AWSProfile: e.Settings.AWS.Profile,
		AWSRegion:  e.Settings.AWS.Region,
	}
}

func (e *Env) settings() config.Settings {
	if e.Settings == nil {
		return config.Settings{Source: config.DefaultSource, Format: config.DefaultFormat}
	}
	return *e.Settings
}
