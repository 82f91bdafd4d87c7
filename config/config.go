package config

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	dimension_router "github.com/terraproxy/dimension-router"
	"github.com/terraproxy/dimension-router/models"
)

type RoutingServerConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Port    uint16 `yaml:"port"`
}

type ServerConfig struct {
	ListenPort     uint16                `yaml:"listen_port"`
	RoutingServers []RoutingServerConfig `yaml:"routing_servers"`
}

type LogOptions struct {
	ExtensionLoad bool `yaml:"extension_load"`
	Connections   bool `yaml:"connections"`
}

type RestAPIOptions struct {
	Enabled bool   `yaml:"enabled"`
	Port    uint16 `yaml:"port"`
}

type BusOptions struct {
	URI     string `yaml:"uri"`
	Channel string `yaml:"channel"`

	ClientCertificatePath string `yaml:"client_cert_path"`
	ClientPrivateKeyPath  string `yaml:"client_private_key_path"`
	CACertificatePath     string `yaml:"ca_cert_path"`
}

// Options groups are pointers so a reload can tell an omitted group from a
// zero-valued one: Merge overwrites only the groups present in the newer
// document, and groups absent from it keep their previous values.
type Options struct {
	Log     *LogOptions     `yaml:"log"`
	RestAPI *RestAPIOptions `yaml:"rest_api"`
	Bus     *BusOptions     `yaml:"bus"`
}

type Config struct {
	Servers []ServerConfig `yaml:"servers"`
	Options Options        `yaml:"options"`
}

func New(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New(dimension_router.ErrRouterEmptyConfigFile)
	}
	c := &Config{}
	err := c.initConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) initConfigFromFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %s", dimension_router.ErrRouterConfigFileNotFound, path)
		}
		return err
	}

	err = yaml.Unmarshal(b, c)
	if err != nil {
		return err
	}

	if len(c.Servers) == 0 {
		return errors.New("at least one server is required")
	}

	seenPorts := make(map[uint16]struct{})
	for _, server := range c.Servers {
		if server.ListenPort < dimension_router.LowerBoundListenPort {
			return fmt.Errorf("%s: %d", dimension_router.ErrInvalidListenPort, server.ListenPort)
		}
		if _, ok := seenPorts[server.ListenPort]; ok {
			return fmt.Errorf("%s: %d", dimension_router.ErrDuplicateListenPort, server.ListenPort)
		}
		seenPorts[server.ListenPort] = struct{}{}

		for _, routingServer := range server.RoutingServers {
			if routingServer.Name == "" {
				return errors.New(dimension_router.ErrEmptyDestinationName)
			}
		}
	}

	return nil
}

// Topology converts the declared servers into the desired topology handed to
// the reconciler.
func (c *Config) Topology() models.Topology {
	topology := make(models.Topology, 0, len(c.Servers))
	for _, server := range c.Servers {
		pool := make(models.DestinationPool, 0, len(server.RoutingServers))
		for _, routingServer := range server.RoutingServers {
			pool = append(pool, models.Destination{
				Name:    routingServer.Name,
				Address: routingServer.Address,
				Port:    routingServer.Port,
			})
		}
		topology = append(topology, models.TopologyEntry{
			ListenPort: server.ListenPort,
			Pool:       pool,
		})
	}
	return topology
}

// Merge overwrites each option group present in newer, leaving the rest
// untouched. Stale groups deliberately survive a reload that omits them.
func (o *Options) Merge(newer Options) {
	if newer.Log != nil {
		o.Log = newer.Log
	}
	if newer.RestAPI != nil {
		o.RestAPI = newer.RestAPI
	}
	if newer.Bus != nil {
		o.Bus = newer.Bus
	}
}

// LogExtensionLoad reports whether extension lifecycle logging is enabled.
func (o *Options) LogExtensionLoad() bool {
	return o != nil && o.Log != nil && o.Log.ExtensionLoad
}

// LogConnections reports whether per-connection logging is enabled.
func (o *Options) LogConnections() bool {
	return o != nil && o.Log != nil && o.Log.Connections
}

// RestAPIEnabled reports whether the reporting surface should run, and on
// which port.
func (o *Options) RestAPIEnabled() (bool, uint16) {
	if o.RestAPI == nil {
		return false, 0
	}
	return o.RestAPI.Enabled, o.RestAPI.Port
}
