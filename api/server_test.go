package api_test

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/tedsuo/ifrit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/terraproxy/dimension-router/api"
	"github.com/terraproxy/dimension-router/models"
)

func freePort() uint16 {
	probe, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer probe.Close()
	return uint16(probe.Addr().(*net.TCPAddr).Port)
}

// Keep-alives are off so each request dials fresh and a released port is
// observed as refused rather than served by an idle connection.
var httpClient = &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}

func getServers(port uint16) (*http.Response, error) {
	return httpClient.Get(fmt.Sprintf("http://127.0.0.1:%d/v0/servers", port))
}

var _ = Describe("Server", func() {
	var (
		server  *api.Server
		process ifrit.Process
		port    uint16
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("test")
		destinations := models.NewDestinationRegistry()
		destinations.Register(models.Destination{Name: "world1", Address: "10.0.0.5", Port: 7778})
		handler := api.NewHandler(logger, destinations, models.NewServerDetailsRegistry(), models.NewTrackingTable())

		port = freePort()
		server = api.NewServer(logger, handler, port)
		process = ifrit.Invoke(server)
	})

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive(BeNil()))
	})

	It("serves the handler on the configured port", func() {
		resp, err := getServers(port)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	Describe("HandleReload", func() {
		Context("when the port is unchanged", func() {
			It("keeps serving on the same listener", func() {
				server.HandleReload(port)

				resp, err := getServers(port)
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
			})
		})

		Context("when the port changed", func() {
			It("rebinds to the new port and releases the old one", func() {
				newPort := freePort()
				server.HandleReload(newPort)

				Eventually(func() error {
					resp, err := getServers(newPort)
					if err != nil {
						return err
					}
					resp.Body.Close()
					return nil
				}).Should(Succeed())

				resp, err := getServers(newPort)
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				Eventually(func() error {
					old, err := getServers(port)
					if err == nil {
						old.Body.Close()
					}
					return err
				}).Should(HaveOccurred())
			})
		})
	})

	Describe("shutdown", func() {
		It("stops accepting connections", func() {
			process.Signal(os.Interrupt)
			Eventually(process.Wait()).Should(Receive(BeNil()))

			Eventually(func() error {
				resp, err := getServers(port)
				if err == nil {
					resp.Body.Close()
				}
				return err
			}).Should(HaveOccurred())
		})
	})
})
