package bus

import (
	"crypto/tls"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/websocket"
)

const handshakeTimeout = 10 * time.Second

// WebsocketClient subscribes to the command bus over a websocket endpoint.
// The channel name is passed as a query parameter; each text frame is one
// command.
type WebsocketClient struct {
	logger lager.Logger
	uri    string
	dialer *websocket.Dialer
}

// NewWebsocketClient builds a client for the bus at uri. tlsConfig may be
// nil for plaintext buses on a trusted network.
func NewWebsocketClient(logger lager.Logger, uri string, tlsConfig *tls.Config) *WebsocketClient {
	return &WebsocketClient{
		logger: logger.Session("bus-client", lager.Data{"uri": uri}),
		uri:    uri,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
			TLSClientConfig:  tlsConfig,
		},
	}
}

func (c *WebsocketClient) Subscribe(channel string) (CommandSource, error) {
	subscribeURI, err := url.Parse(c.uri)
	if err != nil {
		return nil, err
	}
	query := subscribeURI.Query()
	query.Set("channel", channel)
	subscribeURI.RawQuery = query.Encode()

	conn, _, err := c.dialer.Dial(subscribeURI.String(), nil)
	if err != nil {
		return nil, err
	}
	c.logger.Info("subscribed", lager.Data{"channel": channel})
	return &websocketCommandSource{conn: conn}, nil
}

type websocketCommandSource struct {
	conn *websocket.Conn
}

func (s *websocketCommandSource) Next() (string, error) {
	for {
		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			return "", err
		}
		if messageType != websocket.TextMessage {
			continue
		}
		return strings.TrimRight(string(message), "\r\n"), nil
	}
}

func (s *websocketCommandSource) Close() error {
	return s.conn.Close()
}
