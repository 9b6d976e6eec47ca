package config

// Presets are canonical classroom scenarios selectable by name.
var Presets = map[string]*Config{
	"rolling_sphere": {
		Shape: "solid_sphere", Mass: 2.0, Radius: 0.3,
		Velocity: 5.0, AngularVelocity: 5.0 / 0.3,
		Gravity: DefaultGravity,
	},
	"falling_disk": {
		Shape: "disk", Mass: 1.5, Radius: 0.2,
		Height: 12.0, Gravity: DefaultGravity,
	},
	"flywheel": {
		Shape: "hollow_cylinder", Mass: 25.0, Radius: 0.4,
		AngularVelocity: 120.0, Gravity: DefaultGravity,
	},
	"spinning_rod": {
		Shape: "rod_center", Mass: 3.0, Length: 2.0,
		AngularVelocity: 6.0, Gravity: DefaultGravity,
	},
	"compressed_spring": {
		Shape: "custom", Mass: 0.5, Inertia: 0,
		SpringConstant: 400.0, SpringDisplacement: 0.15,
		Gravity: DefaultGravity,
	},
	"rolling_cylinder": {
		Shape: "solid_cylinder", Mass: 2.0, Radius: 0.3,
		Velocity: 5.0, AngularVelocity: 3.0, Height: 5.0,
		Gravity: DefaultGravity,
	},
	"moon_drop": {
		Shape: "solid_sphere", Mass: 10.0, Radius: 0.1,
		Height: 20.0, Gravity: 1.62,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
