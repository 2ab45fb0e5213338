package config

// Presets are compiled-in scene configurations, keyed by scene then
// preset name. Every scene has a "default" preset used when the CLI is
// given only a scene name.
var Presets = map[string]map[string]*Config{
	"bounce": {
		"default": {
			Scene: "bounce", Dt: 0.005, Duration: 10.0, Restitution: 0.8, Iterations: 1,
			Gravity: Vec{0, -9.81, 0},
			Particles: []ParticleConfig{
				{Position: Vec{0, 5, 0}, InverseMass: 1.0, Damping: DefaultDamping, Radius: 0.5},
			},
			Planes: []PlaneConfig{{Normal: Vec{0, 1, 0}, Offset: 0}},
		},
		"elastic": {
			Scene: "bounce", Dt: 0.005, Duration: 10.0, Restitution: 1.0, Iterations: 1,
			Gravity: Vec{0, -9.81, 0},
			Particles: []ParticleConfig{
				{Position: Vec{0, 5, 0}, InverseMass: 1.0, Damping: 1.0, Radius: 0.5},
			},
			Planes: []PlaneConfig{{Normal: Vec{0, 1, 0}, Offset: 0}},
		},
		"dead": {
			Scene: "bounce", Dt: 0.005, Duration: 6.0, Restitution: 0.0, Iterations: 1,
			Gravity: Vec{0, -9.81, 0},
			Particles: []ParticleConfig{
				{Position: Vec{0, 3, 0}, InverseMass: 1.0, Damping: DefaultDamping, Radius: 0.5},
			},
			Planes: []PlaneConfig{{Normal: Vec{0, 1, 0}, Offset: 0}},
		},
	},
	"cradle": {
		"default": {
			Scene: "cradle", Dt: 0.002, Duration: 8.0, Restitution: 1.0, Iterations: 4,
			Particles: []ParticleConfig{
				{Position: Vec{-4, 0, 0}, Velocity: Vec{6, 0, 0}, InverseMass: 1.0, Damping: 1.0, Radius: 0.5},
				{Position: Vec{0, 0, 0}, InverseMass: 1.0, Damping: 1.0, Radius: 0.5},
				{Position: Vec{1.01, 0, 0}, InverseMass: 1.0, Damping: 1.0, Radius: 0.5},
				{Position: Vec{2.02, 0, 0}, InverseMass: 1.0, Damping: 1.0, Radius: 0.5},
			},
		},
	},
	"orbit": {
		"default": {
			Scene: "orbit", Dt: 0.001, Duration: 30.0, Restitution: 1.0, Iterations: 1,
			Particles: []ParticleConfig{
				{Position: Vec{2, 0, 0}, Velocity: Vec{0, 1, 0}, InverseMass: 1.0, Damping: 1.0},
			},
			Fields: []FieldConfig{
				{Particle: 0, Source: Vec{0, 0, 0}, Strength: 2.0},
			},
		},
		"escape": {
			Scene: "orbit", Dt: 0.001, Duration: 20.0, Restitution: 1.0, Iterations: 1,
			Particles: []ParticleConfig{
				{Position: Vec{2, 0, 0}, Velocity: Vec{0, 3, 0}, InverseMass: 1.0, Damping: 1.0},
			},
			Fields: []FieldConfig{
				{Particle: 0, Source: Vec{0, 0, 0}, Strength: 2.0},
			},
		},
	},
	"lattice": {
		"default": {
			Scene: "lattice", Dt: 0.005, Duration: 15.0, Restitution: 1.0, Iterations: 1,
			Particles: []ParticleConfig{
				{Position: Vec{-1, 2, 0}, InverseMass: 1.0, Damping: 0.98},
				{Position: Vec{1, 2, 0}, InverseMass: 1.0, Damping: 0.98},
			},
			Springs: []SpringConfig{
				{Particle: 0, Anchor: Vec{-1, 4, 0}, K: 20.0, RestLength: 1.0},
				{Particle: 1, Anchor: Vec{1, 4, 0}, K: 20.0, RestLength: 1.0},
			},
			Gravity: Vec{0, -9.81, 0},
		},
	},
	"rain": {
		"default": {
			Scene: "rain", Dt: 0.005, Duration: 12.0, Restitution: 0.4, Iterations: 2,
			Gravity: Vec{0, -9.81, 0},
			Particles: []ParticleConfig{
				{Position: Vec{-1.5, 6, 0}, InverseMass: 1.0, Damping: DefaultDamping, Radius: 0.4},
				{Position: Vec{0, 8, 0.2}, InverseMass: 1.0, Damping: DefaultDamping, Radius: 0.4},
				{Position: Vec{1.2, 7, -0.3}, InverseMass: 1.0, Damping: DefaultDamping, Radius: 0.4},
				{Position: Vec{0.4, 10, 0}, InverseMass: 2.0, Damping: DefaultDamping, Radius: 0.3},
				{Position: Vec{-0.8, 9, 0.1}, InverseMass: 2.0, Damping: DefaultDamping, Radius: 0.3},
			},
			Planes: []PlaneConfig{{Normal: Vec{0, 1, 0}, Offset: 0}},
		},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}

func ListScenes() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
