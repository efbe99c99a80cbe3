package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poimap-service/internal/domain"
	"github.com/poimap-service/internal/usecase"
)

func TestDirectionsURL(t *testing.T) {
	t.Run("position", func(t *testing.T) {
		pos := &domain.Position{Lat: 40.4168, Lng: -3.7038}
		assert.Equal(t,
			"https://www.google.com/maps/dir/?api=1&origin=Current+Location&destination=40.4168,-3.7038",
			usecase.DirectionsURL(&domain.Place{Name: "Café"}, pos))
	})

	t.Run("raw google url", func(t *testing.T) {
		p := &domain.Place{Name: "X", GoogleURL: str("https://goo.gl/maps/abc")}
		assert.Equal(t, "https://goo.gl/maps/abc", usecase.DirectionsURL(p, nil))
	})

	t.Run("search by name", func(t *testing.T) {
		p := &domain.Place{Name: "Café Central & Co"}
		assert.Equal(t,
			"https://www.google.com/maps/search/?api=1&query=Caf%C3%A9%20Central%20%26%20Co",
			usecase.DirectionsURL(p, nil))
	})

	t.Run("search keeps characters left by encodeURIComponent", func(t *testing.T) {
		p := &domain.Place{Name: "Bar O'Neill (Centro)! *1+1"}
		assert.Equal(t,
			"https://www.google.com/maps/search/?api=1&query=Bar%20O'Neill%20(Centro)!%20*1%2B1",
			usecase.DirectionsURL(p, nil))
	})
}
