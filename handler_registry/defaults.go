package handler_registry

// passthroughPacketHandler forwards every packet unmodified. It is the
// built-in handler for both packet slots until a replacement is swapped in.
type passthroughPacketHandler struct{}

func NewPassthroughPacketHandler() PacketHandler {
	return passthroughPacketHandler{}
}

func (passthroughPacketHandler) HandlePacket(clientName string, packet []byte) (bool, error) {
	return true, nil
}

// noopCommandHandler consumes nothing; every command falls through to the
// backend.
type noopCommandHandler struct{}

func NewNoopCommandHandler() CommandHandler {
	return noopCommandHandler{}
}

func (noopCommandHandler) HandleCommand(clientName string, command string) (bool, error) {
	return false, nil
}
