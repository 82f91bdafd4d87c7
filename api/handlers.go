package api

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/rata"

	dimension_router "github.com/terraproxy/dimension-router"
	"github.com/terraproxy/dimension-router/models"
)

type PlayerInfo struct {
	Destination string    `json:"destination"`
	JoinedAt    time.Time `json:"joined_at"`
}

type PlayersResponse struct {
	Players      map[string]PlayerInfo `json:"players"`
	ClientCounts map[string]int        `json:"client_counts"`
}

type ServerInfo struct {
	Address     string `json:"address"`
	Port        uint16 `json:"port"`
	ClientCount int    `json:"client_count"`
}

type FleetHandler struct {
	logger       lager.Logger
	destinations *models.DestinationRegistry
	details      *models.ServerDetailsRegistry
	tracking     *models.TrackingTable
}

func NewFleetHandler(
	logger lager.Logger,
	destinations *models.DestinationRegistry,
	details *models.ServerDetailsRegistry,
	tracking *models.TrackingTable,
) *FleetHandler {
	return &FleetHandler{
		logger:       logger,
		destinations: destinations,
		details:      details,
		tracking:     tracking,
	}
}

func (h *FleetHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("list_players")
	logger.Debug("list-players")

	response := PlayersResponse{
		Players:      make(map[string]PlayerInfo),
		ClientCounts: make(map[string]int),
	}
	for name, presence := range h.tracking.Snapshot() {
		response.Players[name] = PlayerInfo{
			Destination: presence.Destination,
			JoinedAt:    presence.JoinedAt,
		}
	}
	for name, details := range h.details.Snapshot() {
		response.ClientCounts[name] = details.ClientCount
	}

	writeStatusOKResponse(w, response)
}

func (h *FleetHandler) ListServers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("list_servers")
	logger.Debug("list-servers")

	response := make(map[string]ServerInfo)
	for name, destination := range h.destinations.Snapshot() {
		response[name] = ServerInfo{
			Address:     destination.Address,
			Port:        destination.Port,
			ClientCount: h.details.ClientCount(name),
		}
	}

	writeStatusOKResponse(w, response)
}

func NewHandler(
	logger lager.Logger,
	destinations *models.DestinationRegistry,
	details *models.ServerDetailsRegistry,
	tracking *models.TrackingTable,
) http.Handler {
	fleetHandler := NewFleetHandler(logger, destinations, details, tracking)
	actions := rata.Handlers{
		dimension_router.ListPlayersRoute: http.HandlerFunc(fleetHandler.ListPlayers),
		dimension_router.ListServersRoute: http.HandlerFunc(fleetHandler.ListServers),
	}

	handler, err := rata.NewRouter(dimension_router.Routes, actions)
	if err != nil {
		panic("unable to create router: " + err.Error())
	}

	return handler
}
