package extension

// Extension is an opaque plugin held in the handler registry's ordered list.
// The orchestrator never looks inside one beyond the capability interfaces
// below, which extensions declare up front rather than being probed on every
// dispatch.
type Extension interface {
	Name() string
	Version() string
}

//go:generate counterfeiter -o fakes/fake_loader.go . Loader

// Loader is the discovery source the extension set is reloaded from.
type Loader interface {
	Discover() ([]Extension, error)
}

// CommandReloader is the optional capability for extensions that answer
// unmatched control-channel commands by hot-swapping their own code. The
// loader is passed through so the extension can rebuild itself.
type CommandReloader interface {
	Extension
	ReloadName() string
	Reload(loader Loader) error
}

// UnloadNotifier is the optional capability for extensions that want a
// callback before being discarded during a lifecycle reload.
type UnloadNotifier interface {
	Unloaded()
}
