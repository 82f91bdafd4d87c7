package dimension_router

import "github.com/tedsuo/rata"

const (
	// Fleet status
	ListPlayersRoute = "ListPlayers"
	ListServersRoute = "ListServers"
)

var Routes = rata.Routes{
	// Fleet status
	{Path: "/v0/players", Method: "GET", Name: ListPlayersRoute},
	{Path: "/v0/servers", Method: "GET", Name: ListServersRoute},
}
