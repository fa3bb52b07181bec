package store

type Storages struct {
	AssignmentStorage AssignmentStorage
	ConfigStorage     ConfigStorage
}

// NewMemoryStorages returns storages that live for the lifetime of the
// process.
func NewMemoryStorages() *Storages {
	return &Storages{
		AssignmentStorage: NewMemoryAssignmentStorage(),
		ConfigStorage:     NewMemoryConfigStorage(),
	}
}
