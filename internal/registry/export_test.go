package registry

// NewWithIDSource exposes the constructor with an injectable id generator.
var NewWithIDSource = newRegistry //nolint: gochecknoglobals
