package types

// EntityID identifies a transient entity within one engine instance.
type EntityID uint64
