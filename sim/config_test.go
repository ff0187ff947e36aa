package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFacilityConfig_FieldEquivalence(t *testing.T) {
	got := NewFacilityConfig("eastside", 8, 1000, 1.2, 0.5)
	want := FacilityConfig{
		Name:          "eastside",
		HoursOpen:     8,
		MaxPopulation: 1000,
		Profile: ServiceProfile{
			ArrivalRate: 1.2,
			ServiceRate: 0.5,
		},
	}
	assert.Equal(t, want, got)
}

func TestFacilityConfig_CloseTime(t *testing.T) {
	assert.Equal(t, 60.0, NewFacilityConfig("a", 1, 10, 1, 1).CloseTime())
	assert.Equal(t, 480.0, NewFacilityConfig("b", 8, 10, 1, 1).CloseTime())
}
