package models_test

import (
	"time"

	"github.com/terraproxy/dimension-router/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TrackingTable", func() {
	var table *models.TrackingTable

	BeforeEach(func() {
		table = models.NewTrackingTable()
	})

	Describe("Track", func() {
		It("records presence for a new name", func() {
			ok := table.Track("Red", models.ClientPresence{Destination: "world1", JoinedAt: time.Now()})
			Expect(ok).To(BeTrue())

			presence, found := table.Lookup("Red")
			Expect(found).To(BeTrue())
			Expect(presence.Destination).To(Equal("world1"))
		})

		Context("when the name is already tracked on another server", func() {
			BeforeEach(func() {
				Expect(table.Track("Red", models.ClientPresence{Destination: "world1"})).To(BeTrue())
			})

			It("reports the collision and keeps the original presence", func() {
				ok := table.Track("Red", models.ClientPresence{Destination: "world2"})
				Expect(ok).To(BeFalse())

				presence, _ := table.Lookup("Red")
				Expect(presence.Destination).To(Equal("world1"))
			})
		})
	})

	Describe("Remove", func() {
		It("frees the name for reuse", func() {
			Expect(table.Track("Red", models.ClientPresence{Destination: "world1"})).To(BeTrue())
			table.Remove("Red")
			Expect(table.Size()).To(Equal(0))
			Expect(table.Track("Red", models.ClientPresence{Destination: "world2"})).To(BeTrue())
		})
	})
})
