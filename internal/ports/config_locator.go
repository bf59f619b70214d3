package ports

// ConfigLocator finds the directory holding tablecipher.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
