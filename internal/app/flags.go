package app

import "flag"

// Config represents the command-line parameters of the viewer.
type Config struct {
	Path     string
	Scale    int
	TPS      int
	Rate     int
	HUDWidth int
	Seed     int64
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 60, Rate: 4, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "in", c.Path, "board image (.png, .gif, .bmp, .tiff) or text board (.txt)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "circuit ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the diagnostics panel, 0 hides it")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "scramble wire states on reset, 0 keeps the image states")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log board statistics")
}
