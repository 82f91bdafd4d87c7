package bus

//go:generate counterfeiter -o fakes/fake_client.go . Client

// Client connects to the remote command bus. The bus carries line-oriented
// UTF-8 text commands on named channels; nothing is ever published back.
type Client interface {
	Subscribe(channel string) (CommandSource, error)
}

//go:generate counterfeiter -o fakes/fake_command_source.go . CommandSource

// CommandSource yields commands from one subscription in arrival order.
// Next blocks until a command arrives or the subscription dies.
type CommandSource interface {
	Next() (string, error)
	Close() error
}
