package extension

import (
	"code.cloudfoundry.org/lager/v3"
)

// Registry is the slice of the handler registry the manager operates on.
type Registry interface {
	Extensions() []Extension
	SetExtensions([]Extension)
}

// Manager owns the extension lifecycle: it unloads the current set, reloads
// the full set from the discovery source, and services the command
// pass-through for reload-capable extensions.
type Manager struct {
	logger    lager.Logger
	loader    Loader
	registry  Registry
	reloaders []CommandReloader
}

func NewManager(logger lager.Logger, loader Loader, registry Registry) *Manager {
	return &Manager{
		logger:   logger.Session("extension-manager"),
		loader:   loader,
		registry: registry,
	}
}

// ReloadAll unloads every loaded extension and repopulates the registry list
// from the discovery source. When discovery fails the previous set stays
// loaded. logLoad controls per-extension lifecycle logging.
func (m *Manager) ReloadAll(logLoad bool) error {
	for _, ext := range m.registry.Extensions() {
		if logLoad {
			m.logger.Info("unloading-extension", lager.Data{"name": ext.Name(), "version": ext.Version()})
		}
		if notifier, ok := ext.(UnloadNotifier); ok {
			notifier.Unloaded()
		}
	}

	extensions, err := m.loader.Discover()
	if err != nil {
		m.logger.Error("failed-to-discover-extensions", err)
		return err
	}

	if logLoad {
		for _, ext := range extensions {
			m.logger.Info("loaded-extension", lager.Data{"name": ext.Name(), "version": ext.Version()})
		}
	}

	m.registry.SetExtensions(extensions)
	m.cacheCapabilities(extensions)
	return nil
}

// DispatchCommand forwards an unmatched control-channel command to every
// reload-capable extension whose reload name matches. A command matching no
// extension is a silent no-op.
func (m *Manager) DispatchCommand(command string) {
	for _, reloader := range m.reloaders {
		if reloader.ReloadName() != command {
			continue
		}
		if err := reloader.Reload(m.loader); err != nil {
			m.logger.Error("failed-to-reload-extension", err, lager.Data{"name": reloader.Name(), "command": command})
		}
	}
}

// cacheCapabilities asserts optional interfaces once at load time so command
// dispatch never probes.
func (m *Manager) cacheCapabilities(extensions []Extension) {
	reloaders := make([]CommandReloader, 0, len(extensions))
	for _, ext := range extensions {
		if reloader, ok := ext.(CommandReloader); ok {
			reloaders = append(reloaders, reloader)
		}
	}
	m.reloaders = reloaders
}
