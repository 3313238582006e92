package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	profileObject   = "profile"
	profileProperty = "player"
)

// PlayerProfile is remembered between sessions.
type PlayerProfile struct {
	Name     string `yaml:"name"`
	LastSave string `yaml:"last_save"`
	Muted    bool   `yaml:"muted"`
}

// Profile stores the player profile in the per-user data directory.
// A Profile without a data manager keeps everything in memory.
type Profile struct {
	data    *gdata.Manager
	current PlayerProfile
}

// OpenProfile opens the profile store for app. When the data directory is
// unavailable the profile still works but nothing is persisted.
func OpenProfile(app string) (*Profile, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return &Profile{}, fmt.Errorf("storage: cannot open profile data: %w", err)
	}
	p := &Profile{data: m}
	if err := p.load(); err != nil {
		return p, err
	}
	return p, nil
}

func (p *Profile) load() error {
	if p.data == nil || !p.data.ObjectPropExists(profileObject, profileProperty) {
		return nil
	}
	raw, err := p.data.LoadObjectProp(profileObject, profileProperty)
	if err != nil {
		return fmt.Errorf("storage: cannot load profile: %w", err)
	}
	var loaded PlayerProfile
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("storage: cannot decode profile: %w", err)
	}
	p.current = loaded
	return nil
}

// Get returns the current profile.
func (p *Profile) Get() PlayerProfile {
	return p.current
}

// Update replaces the profile and persists it.
func (p *Profile) Update(next PlayerProfile) error {
	p.current = next
	if p.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(next)
	if err != nil {
		return fmt.Errorf("storage: cannot encode profile: %w", err)
	}
	if err := p.data.SaveObjectProp(profileObject, profileProperty, raw); err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}
