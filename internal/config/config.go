package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt          = 0.01
	DefaultDuration    = 10.0
	DefaultRestitution = 1.0
	DefaultIterations  = 1
	DefaultDamping     = 0.995
)

// Vec holds a 3-vector as it appears in YAML: [x, y, z].
type Vec [3]float64

// Config fully describes a scene and how to run it.
type Config struct {
	Scene       string  `yaml:"scene"`
	Dt          float64 `yaml:"dt"`
	Duration    float64 `yaml:"duration"`
	Restitution float64 `yaml:"restitution"`
	Iterations  int     `yaml:"iterations"`
	Gravity     Vec     `yaml:"gravity"`

	Particles []ParticleConfig `yaml:"particles"`
	Planes    []PlaneConfig    `yaml:"planes"`
	Springs   []SpringConfig   `yaml:"springs"`
	Fields    []FieldConfig    `yaml:"fields"`
}

type ParticleConfig struct {
	Position    Vec     `yaml:"position"`
	Velocity    Vec     `yaml:"velocity"`
	InverseMass float64 `yaml:"inverse_mass"`
	Damping     float64 `yaml:"damping"`

	// Radius > 0 attaches a sphere collider.
	Radius float64 `yaml:"radius"`
}

type PlaneConfig struct {
	Normal Vec     `yaml:"normal"`
	Offset float64 `yaml:"offset"`
}

// SpringConfig anchors a particle (by index into Particles) to a fixed
// point.
type SpringConfig struct {
	Particle   int     `yaml:"particle"`
	Anchor     Vec     `yaml:"anchor"`
	K          float64 `yaml:"k"`
	RestLength float64 `yaml:"rest_length"`
}

// FieldConfig subjects a particle to an inverse-square field. Positive
// strength attracts toward the source, negative repels.
type FieldConfig struct {
	Particle      int     `yaml:"particle"`
	Source        Vec     `yaml:"source"`
	Strength      float64 `yaml:"strength"`
	MinSeparation float64 `yaml:"min_separation"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:       "bounce",
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		Restitution: DefaultRestitution,
		Iterations:  DefaultIterations,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
