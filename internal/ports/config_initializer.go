package ports

// ConfigInitializer scaffolds a tablecipher.yaml under root.
type ConfigInitializer interface {
	Init(root string, force bool) error
}
