package gizmo

import "github.com/google/uuid"

// GroupId identifies one registered gizmo group in a ConfigStore.
type GroupId string

// Config controls how one group of gizmos is drawn.
type Config struct {
	// Enabled toggles recording for every surface bound to this config.
	// Disabled surfaces skip all geometry work, not just the submission.
	Enabled bool

	// LineWidth is forwarded to the renderer, in pixels.
	LineWidth float32
}

func defaultConfig() *Config {
	return &Config{
		Enabled:   true,
		LineWidth: 2,
	}
}

// ConfigStore keeps the configs of every registered gizmo group, so a host can
// toggle or style groups (physics wires, navmesh, editor handles) without the
// draw sites knowing about each other. A default group always exists.
type ConfigStore struct {
	groups       map[GroupId]*Config
	defaultGroup GroupId
}

func NewConfigStore() *ConfigStore {
	s := &ConfigStore{groups: make(map[GroupId]*Config)}
	s.defaultGroup = s.Register()
	return s
}

// Register adds a new group with a default config and returns its id.
func (s *ConfigStore) Register() GroupId {
	id := GroupId(uuid.NewString())
	s.groups[id] = defaultConfig()
	return id
}

// DefaultGroup returns the id of the group created with the store.
func (s *ConfigStore) DefaultGroup() GroupId {
	return s.defaultGroup
}

// Config returns the config of a group, or nil for an unknown id.
func (s *ConfigStore) Config(id GroupId) *Config {
	return s.groups[id]
}

// Gizmos binds a draw surface to the given group and frame buffer. Unknown
// ids fall back to the default group.
func (s *ConfigStore) Gizmos(id GroupId, buffer *Buffer) *Gizmos {
	config, ok := s.groups[id]
	if !ok {
		config = s.groups[s.defaultGroup]
	}
	return NewGizmos(buffer, config)
}
