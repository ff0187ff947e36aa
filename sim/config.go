package sim

// MinutesPerHour converts the configured operating window to simulation
// time, which is measured in minutes from open.
const MinutesPerHour = 60.0

// ServiceProfile holds the stochastic process rates for one facility.
// Both rates are per minute and must be positive; this is a documented
// caller precondition, validated at the CLI boundary rather than here.
type ServiceProfile struct {
	ArrivalRate float64 // mean arrivals per minute
	ServiceRate float64 // mean service completions per minute
}

// FacilityConfig describes one facility for a simulated operating day.
// It is immutable for the duration of a run.
type FacilityConfig struct {
	Name          string // label only, never interpreted
	HoursOpen     int    // operating window in hours
	MaxPopulation int    // arrivals generated per run (generation budget, not an observed-population cap)
	Profile       ServiceProfile
}

// NewFacilityConfig groups the facility parameters into a FacilityConfig.
func NewFacilityConfig(name string, hoursOpen, maxPopulation int, arrivalRate, serviceRate float64) FacilityConfig {
	return FacilityConfig{
		Name:          name,
		HoursOpen:     hoursOpen,
		MaxPopulation: maxPopulation,
		Profile: ServiceProfile{
			ArrivalRate: arrivalRate,
			ServiceRate: serviceRate,
		},
	}
}

// CloseTime returns the closing time in minutes from open. Arrivals after
// this instant are still generated but excluded from recorded results.
func (c FacilityConfig) CloseTime() float64 {
	return float64(c.HoursOpen) * MinutesPerHour
}
