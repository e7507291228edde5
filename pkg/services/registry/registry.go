package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/ini.v1"
)

const DefaultProfilesFile = ".cfotimes.ini"

// Profile binds a client to the snapshot and output it is rendered with.
type Profile struct {
	Name       string
	Source     string
	Format     string
	Output     string
	AWSProfile string
}

type ConfigRegistry interface {
	GetProfiles() ([]string, error)
	GetProfile(name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewConfigRegistry loads an ini file with one section per client:
//
//	[titan]
//	source = s3://benefique-reports/titan/2026-01.yaml
//	format = html
//	output = out/titan.html
func NewConfigRegistry(path string) (ConfigRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles file: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// DefaultPath is ~/.cfotimes.ini.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return filepath.Join(home, DefaultProfilesFile), nil
}

func (cr *cfgRegistry) GetProfiles() ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	slices.Sort(profiles)
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := &Profile{
		Name:       name,
		Source:     section.Key("source").String(),
		Format:     section.Key("format").String(),
		Output:     section.Key("output").String(),
		AWSProfile: section.Key("aws_profile").String(),
	}
	if profile.Source == "" {
		return nil, fmt.Errorf("profile %s has no source", name)
	}
	return profile, nil
}
