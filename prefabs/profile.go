package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/lander/physics"
	"gopkg.in/yaml.v3"
)

const profileDir = "profiles"

// LoadProfile reads profiles/<name>.yaml on top of the default constants, so
// a profile only lists what it changes. Unknown keys are rejected.
func LoadProfile(name string) (physics.Profile, error) {
	if name == "" {
		name = physics.DefaultProfile().Name
	}
	file := ProfilePath(name)
	data, err := Load(file)
	if err != nil {
		return physics.Profile{}, fmt.Errorf("prefabs: load profile %q: %w", name, err)
	}
	p, err := DecodeProfile(data)
	if err != nil {
		return physics.Profile{}, fmt.Errorf("prefabs: profile %q: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

// DecodeProfile decodes a yaml constant set over the defaults and validates
// the result.
func DecodeProfile(data []byte) (physics.Profile, error) {
	p := physics.DefaultProfile()
	p.Name = ""

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return physics.Profile{}, fmt.Errorf("decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return physics.Profile{}, err
	}
	return p, nil
}

// ProfilePath maps a profile name to its prefab path.
func ProfilePath(name string) string {
	return path.Join(profileDir, name+".yaml")
}

// ProfileName maps a changed file back to a profile name. ok is false for
// files outside the profiles directory.
func ProfileName(file string) (string, bool) {
	clean := cleanPrefabPath(file)
	dir, base := path.Split(clean)
	if !strings.HasSuffix(strings.TrimSuffix(dir, "/"), profileDir) || !isSpecFile(base) {
		return "", false
	}
	return strings.TrimSuffix(base, path.Ext(base)), true
}

// ProfileNames lists the embedded profiles.
func ProfileNames() []string {
	entries, err := fs.ReadDir(PrefabsFS, profileDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}
