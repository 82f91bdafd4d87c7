package models

import "fmt"

// Destination is a routable backend dimension server. Destinations are
// declared inside a topology entry's pool and indexed globally by name.
type Destination struct {
	Name    string
	Address string
	Port    uint16
}

func (d Destination) ConnectionAddress() string {
	return fmt.Sprintf("%s:%d", d.Address, d.Port)
}

type DestinationPool []Destination

// TopologyEntry describes one desired listen server: the port it binds and
// the ordered pool of destinations it may route new connections to.
type TopologyEntry struct {
	ListenPort uint16
	Pool       DestinationPool
}

type Topology []TopologyEntry
