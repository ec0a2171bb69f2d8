package ports

// ConfigInitializer writes a starter localdate.yaml into dir. It reports whether
// the file was written; an existing file is kept unless force is set.
type ConfigInitializer interface {
	Init(dir string, force bool) (string, bool, error)
}
