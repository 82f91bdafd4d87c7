package handler_registry

// CommandHandler processes chat commands typed by connected clients.
type CommandHandler interface {
	HandleCommand(clientName string, command string) (handled bool, err error)
}

// PacketHandler processes one framed game packet and reports whether the
// packet should still be forwarded.
type PacketHandler interface {
	HandlePacket(clientName string, packet []byte) (forward bool, err error)
}

type CommandHandlerFactory func() (CommandHandler, error)

type PacketHandlerFactory func() (PacketHandler, error)
