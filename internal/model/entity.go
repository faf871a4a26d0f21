package model

// Entity is the capability every persisted record exposes to the generic
// repository and handler factory.
type Entity interface {
	GetID() uint
}
