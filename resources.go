package dimension_router

const (
	ErrRouterConfigFileNotFound = "Configuration file not found"
	ErrRouterEmptyConfigFile    = "Configuration file not specified"
	ErrInvalidListenPort        = "Invalid listen port"
	ErrDuplicateListenPort      = "Duplicate listen port"
	ErrEmptyDestinationName     = "Destination name cannot be empty"

	LowerBoundListenPort = 1024
)

type ErrInvalidField struct {
	Field string
}

func (err ErrInvalidField) Error() string {
	return "Invalid field: " + err.Field
}
