package domain

// Config represents the tablecipher configuration loaded from tablecipher.yaml.
type Config struct {
	Cipher  CipherConfig
	Session SessionConfig
	Output  OutputConfig
}

type CipherConfig struct {
	Filler             rune
	RequirePermutation bool
}

type SessionConfig struct {
	ExitToken  string
	ShowTables bool
	Banner     string
}

type OutputConfig struct {
	Format string
}

const (
	DefaultFiller    = 'y'
	DefaultExitToken = "EXIT"
	DefaultBanner    = "=== CJ's Table Cipher ==="

	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// DefaultConfig provides sane defaults if tablecipher.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Cipher: CipherConfig{
			Filler: DefaultFiller,
		},
		Session: SessionConfig{
			ExitToken:  DefaultExitToken,
			ShowTables: true,
			Banner:     DefaultBanner,
		},
		Output: OutputConfig{
			Format: FormatPretty,
		},
	}
}

// Options returns the cipher options implied by the config.
func (c Config) Options() Options {
	return Options{
		Filler:             c.Cipher.Filler,
		RequirePermutation: c.Cipher.RequirePermutation,
	}
}
