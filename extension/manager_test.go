package extension_test

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/terraproxy/dimension-router/extension"
	"github.com/terraproxy/dimension-router/extension/fakes"
)

type stubRegistry struct {
	lock       sync.Mutex
	extensions []extension.Extension
}

func (r *stubRegistry) Extensions() []extension.Extension {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.extensions
}

func (r *stubRegistry) SetExtensions(extensions []extension.Extension) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.extensions = extensions
}

type plainExtension struct {
	name    string
	version string
}

func (e *plainExtension) Name() string    { return e.name }
func (e *plainExtension) Version() string { return e.version }

type notifyingExtension struct {
	plainExtension
	unloadCount int
}

func (e *notifyingExtension) Unloaded() {
	e.unloadCount++
}

type reloadableExtension struct {
	plainExtension
	reloadName   string
	reloadErr    error
	reloadedWith []extension.Loader
}

func (e *reloadableExtension) ReloadName() string { return e.reloadName }

func (e *reloadableExtension) Reload(loader extension.Loader) error {
	e.reloadedWith = append(e.reloadedWith, loader)
	return e.reloadErr
}

var _ = Describe("Manager", func() {
	var (
		fakeLoader *fakes.FakeLoader
		registry   *stubRegistry
		manager    *extension.Manager
	)

	BeforeEach(func() {
		fakeLoader = &fakes.FakeLoader{}
		registry = &stubRegistry{}
		manager = extension.NewManager(logger, fakeLoader, registry)
	})

	Describe("ReloadAll", func() {
		var (
			notifier   *notifyingExtension
			discovered []extension.Extension
		)

		BeforeEach(func() {
			notifier = &notifyingExtension{plainExtension: plainExtension{name: "chat-relay", version: "0.4.1"}}
			registry.SetExtensions([]extension.Extension{
				&plainExtension{name: "tshock-bridge", version: "1.2.0"},
				notifier,
			})

			discovered = []extension.Extension{
				&plainExtension{name: "tshock-bridge", version: "1.3.0"},
				&plainExtension{name: "chat-relay", version: "0.5.0"},
				&plainExtension{name: "map-render", version: "2.0.0"},
			}
			fakeLoader.DiscoverReturns(discovered, nil)
		})

		It("replaces the registry list with the discovered set", func() {
			err := manager.ReloadAll(false)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeLoader.DiscoverCallCount()).To(Equal(1))
			Expect(registry.Extensions()).To(HaveLen(3))
			Expect(registry.Extensions()[2].Name()).To(Equal("map-render"))
		})

		It("notifies extensions that asked to hear about their unload", func() {
			Expect(manager.ReloadAll(false)).To(Succeed())
			Expect(notifier.unloadCount).To(Equal(1))
		})

		Context("when lifecycle logging is on", func() {
			It("logs each unload and each load", func() {
				Expect(manager.ReloadAll(true)).To(Succeed())
				Expect(logger).To(gbytes.Say("unloading-extension"))
				Expect(logger).To(gbytes.Say("tshock-bridge"))
				Expect(logger).To(gbytes.Say("unloading-extension"))
				Expect(logger).To(gbytes.Say("chat-relay"))
				Expect(logger).To(gbytes.Say("loaded-extension"))
				Expect(logger).To(gbytes.Say("loaded-extension"))
				Expect(logger).To(gbytes.Say("loaded-extension"))
				Expect(logger).To(gbytes.Say("map-render"))
			})
		})

		Context("when lifecycle logging is off", func() {
			It("stays quiet", func() {
				Expect(manager.ReloadAll(false)).To(Succeed())
				Expect(logger).NotTo(gbytes.Say("unloading-extension"))
				Expect(logger).NotTo(gbytes.Say("loaded-extension"))
			})
		})

		Context("when discovery fails", func() {
			BeforeEach(func() {
				fakeLoader.DiscoverReturns(nil, errors.New("filesystem on fire"))
			})

			It("returns the error and keeps the previous set loaded", func() {
				err := manager.ReloadAll(false)
				Expect(err).To(MatchError("filesystem on fire"))
				Expect(logger).To(gbytes.Say("failed-to-discover-extensions"))

				extensions := registry.Extensions()
				Expect(extensions).To(HaveLen(2))
				Expect(extensions[0].Name()).To(Equal("tshock-bridge"))
				Expect(extensions[0].Version()).To(Equal("1.2.0"))
			})
		})
	})

	Describe("DispatchCommand", func() {
		var (
			worldSwapper *reloadableExtension
			mapRenderer  *reloadableExtension
		)

		BeforeEach(func() {
			worldSwapper = &reloadableExtension{
				plainExtension: plainExtension{name: "world-swapper", version: "1.0.0"},
				reloadName:     "swapworlds",
			}
			mapRenderer = &reloadableExtension{
				plainExtension: plainExtension{name: "map-render", version: "2.0.0"},
				reloadName:     "rendermap",
			}
			fakeLoader.DiscoverReturns([]extension.Extension{
				&plainExtension{name: "tshock-bridge", version: "1.2.0"},
				worldSwapper,
				mapRenderer,
			}, nil)
			Expect(manager.ReloadAll(false)).To(Succeed())
		})

		It("invokes only the extension whose reload name matches", func() {
			manager.DispatchCommand("swapworlds")
			Expect(worldSwapper.reloadedWith).To(HaveLen(1))
			Expect(mapRenderer.reloadedWith).To(BeEmpty())
		})

		It("hands the reloading extension the discovery source", func() {
			manager.DispatchCommand("rendermap")
			Expect(mapRenderer.reloadedWith).To(HaveLen(1))
			Expect(mapRenderer.reloadedWith[0]).To(BeIdenticalTo(extension.Loader(fakeLoader)))
		})

		It("is a silent no-op for a command matching no extension", func() {
			manager.DispatchCommand("makecoffee")
			Expect(worldSwapper.reloadedWith).To(BeEmpty())
			Expect(mapRenderer.reloadedWith).To(BeEmpty())
			Expect(logger.Buffer().Contents()).To(BeEmpty())
		})

		It("requires an exact match", func() {
			manager.DispatchCommand("SwapWorlds")
			Expect(worldSwapper.reloadedWith).To(BeEmpty())
		})

		Context("when the reload fails", func() {
			BeforeEach(func() {
				worldSwapper.reloadErr = errors.New("bad bytecode")
			})

			It("logs and carries on", func() {
				manager.DispatchCommand("swapworlds")
				Expect(logger).To(gbytes.Say("failed-to-reload-extension"))
				Expect(logger).To(gbytes.Say("world-swapper"))
			})
		})

		Context("before any reload has run", func() {
			It("knows about no reloaders", func() {
				fresh := extension.NewManager(logger, fakeLoader, &stubRegistry{})
				fresh.DispatchCommand("swapworlds")
				Expect(worldSwapper.reloadedWith).To(BeEmpty())
			})
		})
	})
})
