package config

var Presets = map[string]*Config{
	"classic": {
		Logo: "dvd", Speed: 14, Heading: 37, FPS: 30, Theme: "classic", Trail: 0,
		Glow: Glow{Enabled: true, Duration: 0.8},
	},
	"frantic": {
		Logo: "dot", Speed: 60, Heading: -1, FPS: 60, Theme: "neon", Trail: 24,
		Glow: Glow{Enabled: true, Duration: 0.4},
	},
	"zen": {
		Logo: "heart", Speed: 5, Heading: 30, FPS: 24, Theme: "mono", Trail: 0,
		Glow: Glow{Enabled: false},
	},
	"drunk": {
		Logo: "block", Speed: 22, Heading: -1, FPS: 30, Theme: "neon", Trail: 8,
		Glow: Glow{Enabled: true, Duration: 1.5},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
