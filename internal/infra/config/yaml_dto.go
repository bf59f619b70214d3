package config

type YAMLConfig struct {
	TableCipher YAMLTableCipher `yaml:"tablecipher"`
}

type YAMLTableCipher struct {
	Cipher  YAMLCipher  `yaml:"cipher"`
	Session YAMLSession `yaml:"session"`
	Output  YAMLOutput  `yaml:"output"`
}

type YAMLCipher struct {
	Filler             string `yaml:"filler"`
	RequirePermutation *bool  `yaml:"require_permutation"`
}

type YAMLSession struct {
	ExitToken  string  `yaml:"exit_token"`
	ShowTables *bool   `yaml:"show_tables"`
	Banner     *string `yaml:"banner"`
}

type YAMLOutput struct {
	Format string `yaml:"format"`
}
