package handler_registry_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/terraproxy/dimension-router/extension"
	"github.com/terraproxy/dimension-router/handler_registry"
)

type stubCommandHandler struct {
	id string
}

func (h *stubCommandHandler) HandleCommand(clientName string, command string) (bool, error) {
	return false, nil
}

type stubPacketHandler struct {
	id string
}

func (h *stubPacketHandler) HandlePacket(clientName string, packet []byte) (bool, error) {
	return true, nil
}

type stubExtension struct {
	name    string
	version string
}

func (e *stubExtension) Name() string    { return e.name }
func (e *stubExtension) Version() string { return e.version }

var _ = Describe("Registry", func() {
	var (
		registry *handler_registry.Registry

		commandErr       error
		clientPacketErr  error
		backendPacketErr error
	)

	commandFactory := func() (handler_registry.CommandHandler, error) {
		if commandErr != nil {
			return nil, commandErr
		}
		return &stubCommandHandler{id: "command"}, nil
	}
	clientPacketFactory := func() (handler_registry.PacketHandler, error) {
		if clientPacketErr != nil {
			return nil, clientPacketErr
		}
		return &stubPacketHandler{id: "client"}, nil
	}
	backendPacketFactory := func() (handler_registry.PacketHandler, error) {
		if backendPacketErr != nil {
			return nil, backendPacketErr
		}
		return &stubPacketHandler{id: "backend"}, nil
	}

	BeforeEach(func() {
		commandErr = nil
		clientPacketErr = nil
		backendPacketErr = nil
	})

	JustBeforeEach(func() {
		var err error
		registry, err = handler_registry.New(logger, commandFactory, clientPacketFactory, backendPacketFactory)
		if commandErr == nil && clientPacketErr == nil && backendPacketErr == nil {
			Expect(err).NotTo(HaveOccurred())
		}
	})

	Describe("New", func() {
		It("populates every slot from its factory", func() {
			Expect(registry.CommandHandler()).NotTo(BeNil())
			Expect(registry.ClientPacketHandler()).NotTo(BeNil())
			Expect(registry.BackendPacketHandler()).NotTo(BeNil())
		})

		Context("when a factory fails", func() {
			BeforeEach(func() {
				clientPacketErr = errors.New("kaboom")
			})

			It("returns the error", func() {
				_, err := handler_registry.New(logger, commandFactory, clientPacketFactory, backendPacketFactory)
				Expect(err).To(MatchError("kaboom"))
			})
		})
	})

	Describe("SwapCommandHandler", func() {
		It("replaces the slot with a fresh instance", func() {
			previous := registry.CommandHandler()
			err := registry.SwapCommandHandler()
			Expect(err).NotTo(HaveOccurred())
			Expect(registry.CommandHandler()).NotTo(BeIdenticalTo(previous))
			Expect(logger).To(gbytes.Say("swapped-command-handler"))
		})

		It("leaves the other slots untouched", func() {
			clientBefore := registry.ClientPacketHandler()
			backendBefore := registry.BackendPacketHandler()
			Expect(registry.SwapCommandHandler()).To(Succeed())
			Expect(registry.ClientPacketHandler()).To(BeIdenticalTo(clientBefore))
			Expect(registry.BackendPacketHandler()).To(BeIdenticalTo(backendBefore))
		})

		Context("when the factory fails", func() {
			It("keeps the previous instance active", func() {
				previous := registry.CommandHandler()
				commandErr = errors.New("no handler for you")

				err := registry.SwapCommandHandler()
				Expect(err).To(MatchError("no handler for you"))
				Expect(registry.CommandHandler()).To(BeIdenticalTo(previous))
				Expect(logger).To(gbytes.Say("failed-to-construct-command-handler"))
			})
		})
	})

	Describe("SwapClientPacketHandler", func() {
		It("replaces only the client packet slot", func() {
			previous := registry.ClientPacketHandler()
			backendBefore := registry.BackendPacketHandler()

			Expect(registry.SwapClientPacketHandler()).To(Succeed())
			Expect(registry.ClientPacketHandler()).NotTo(BeIdenticalTo(previous))
			Expect(registry.BackendPacketHandler()).To(BeIdenticalTo(backendBefore))
			Expect(logger).To(gbytes.Say("swapped-client-packet-handler"))
		})

		Context("when the factory fails", func() {
			It("keeps the previous instance active", func() {
				previous := registry.ClientPacketHandler()
				clientPacketErr = errors.New("bad build")

				Expect(registry.SwapClientPacketHandler()).NotTo(Succeed())
				Expect(registry.ClientPacketHandler()).To(BeIdenticalTo(previous))
				Expect(logger).To(gbytes.Say("failed-to-construct-client-packet-handler"))
			})
		})
	})

	Describe("SwapBackendPacketHandler", func() {
		It("replaces only the backend packet slot", func() {
			previous := registry.BackendPacketHandler()
			clientBefore := registry.ClientPacketHandler()

			Expect(registry.SwapBackendPacketHandler()).To(Succeed())
			Expect(registry.BackendPacketHandler()).NotTo(BeIdenticalTo(previous))
			Expect(registry.ClientPacketHandler()).To(BeIdenticalTo(clientBefore))
		})

		Context("when the factory fails", func() {
			It("keeps the previous instance active", func() {
				previous := registry.BackendPacketHandler()
				backendPacketErr = errors.New("bad build")

				Expect(registry.SwapBackendPacketHandler()).NotTo(Succeed())
				Expect(registry.BackendPacketHandler()).To(BeIdenticalTo(previous))
				Expect(logger).To(gbytes.Say("failed-to-construct-backend-packet-handler"))
			})
		})
	})

	Describe("Extensions", func() {
		It("starts empty", func() {
			Expect(registry.Extensions()).To(BeEmpty())
		})

		It("returns the list set by SetExtensions in order", func() {
			registry.SetExtensions([]extension.Extension{
				&stubExtension{name: "tshock-bridge", version: "1.2.0"},
				&stubExtension{name: "chat-relay", version: "0.4.1"},
			})

			extensions := registry.Extensions()
			Expect(extensions).To(HaveLen(2))
			Expect(extensions[0].Name()).To(Equal("tshock-bridge"))
			Expect(extensions[1].Name()).To(Equal("chat-relay"))
		})

		It("returns a copy the caller cannot use to mutate the registry", func() {
			registry.SetExtensions([]extension.Extension{
				&stubExtension{name: "tshock-bridge", version: "1.2.0"},
			})

			extensions := registry.Extensions()
			extensions[0] = &stubExtension{name: "mangled", version: "9.9.9"}

			Expect(registry.Extensions()[0].Name()).To(Equal("tshock-bridge"))
		})
	})
})
