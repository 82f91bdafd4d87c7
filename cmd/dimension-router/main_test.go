package main_test

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/terraproxy/dimension-router/cmd/dimension-router/testrunner"
)

// busServer is an in-process command bus the binary subscribes to.
type busServer struct {
	upgrader websocket.Upgrader
	conns    chan *websocket.Conn
}

func newBusServer() *busServer {
	return &busServer{conns: make(chan *websocket.Conn, 4)}
}

func (b *busServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	b.conns <- conn
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func freePort() uint16 {
	probe, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer probe.Close()
	return uint16(probe.Addr().(*net.TCPAddr).Port)
}

func writeConfig(listenPort, restPort uint16, busURI string) string {
	configFile, err := os.CreateTemp("", "dimension_router_*.yml")
	Expect(err).NotTo(HaveOccurred())
	_, err = fmt.Fprintf(configFile, `servers:
- listen_port: %d
  routing_servers:
  - name: world1
    address: 127.0.0.1
    port: 7878
options:
  log:
    extension_load: true
  rest_api:
    enabled: true
    port: %d
  bus:
    uri: %s
    channel: dimensions_cli
`, listenPort, restPort, busURI)
	Expect(err).NotTo(HaveOccurred())
	Expect(configFile.Close()).To(Succeed())
	return configFile.Name()
}

var _ = Describe("Main", func() {
	var (
		bus            *busServer
		busHTTPServer  *httptest.Server
		configFilePath string
		restPort       uint16
		runner         *ginkgomon_v2.Runner
		process        ifrit.Process
	)

	BeforeEach(func() {
		bus = newBusServer()
		busHTTPServer = httptest.NewServer(bus)
		busURI := "ws" + strings.TrimPrefix(busHTTPServer.URL, "http") + "/commands"

		restPort = freePort()
		configFilePath = writeConfig(freePort(), restPort, busURI)
	})

	AfterEach(func() {
		if process != nil {
			ginkgomon_v2.Kill(process, 5*time.Second)
			process = nil
		}
		busHTTPServer.Close()
		os.Remove(configFilePath)
	})

	Context("when valid arguments are passed", func() {
		BeforeEach(func() {
			runner = testrunner.New(dimensionRouterPath, testrunner.Args{
				ConfigFilePath:            configFilePath,
				SubscriptionRetryInterval: 100 * time.Millisecond,
				SyncInterval:              0,
			})
			process = ginkgomon_v2.Invoke(runner)
		})

		It("serves the reporting surface on the configured port", func() {
			Eventually(func() error {
				resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/v0/servers", restPort))
				if err != nil {
					return err
				}
				defer resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return fmt.Errorf("unexpected status %d", resp.StatusCode)
				}
				buf := make([]byte, 4096)
				n, _ := resp.Body.Read(buf)
				if !strings.Contains(string(buf[:n]), "world1") {
					return fmt.Errorf("world1 not registered yet")
				}
				return nil
			}, 10*time.Second).Should(Succeed())
		})

		It("answers commands arriving on the control channel", func() {
			var conn *websocket.Conn
			Eventually(bus.conns, 10*time.Second).Should(Receive(&conn))

			Expect(conn.WriteMessage(websocket.TextMessage, []byte("players"))).To(Succeed())
			Eventually(runner.Buffer(), 10*time.Second).Should(gbytes.Say("players-report"))
		})
	})

	Context("when the config file does not exist", func() {
		It("exits with an error", func() {
			runner = testrunner.New(dimensionRouterPath, testrunner.Args{
				ConfigFilePath:            "/does/not/exist.yml",
				SubscriptionRetryInterval: 100 * time.Millisecond,
				SyncInterval:              0,
			})
			failing := ifrit.Background(runner)
			defer failing.Signal(os.Kill)

			Eventually(failing.Wait(), 10*time.Second).Should(Receive(HaveOccurred()))
		})
	})
})
