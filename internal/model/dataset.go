package model

// Criterion value names shared between the provider datasets and the
// criterion catalogs. Keeping them in one place avoids drift between the
// dataset structs and the catalog registrations.
const (
	CritInternetPenetration   = "internet_penetration"
	CritTransportationDensity = "transportation_density"
	CritDisasterLosses        = "disaster_losses"
	CritWaterConsumption      = "water_consumption"
	CritDisposableIncome      = "disposable_income"

	CritAnnualTemperature = "annual_temperature"
	CritHydropower        = "hydropower_resources"
	CritWindResources     = "wind_resources"
	CritAirQualityRate    = "air_quality_rate"

	CritSolarIrradiance   = "solar_irradiance"
	CritWindSpeed         = "wind_speed"
	CritRenewableCoverage = "renewable_coverage"
)

// EconomicData holds the economic criterion values for one site.
type EconomicData struct {
	InternetPenetration   float64 `json:"internet_penetration"`   // percent
	TransportationDensity float64 `json:"transportation_density"` // km/km2
	DisasterLosses        float64 `json:"disaster_losses"`        // annual direct losses, 100M units
	WaterConsumption      float64 `json:"water_consumption"`      // m3 per unit GDP
	DisposableIncome      float64 `json:"disposable_income"`      // per-capita annual
}

// Values returns the dataset as a criterion value set.
func (d EconomicData) Values() map[string]float64 {
	return map[string]float64{
		CritInternetPenetration:   d.InternetPenetration,
		CritTransportationDensity: d.TransportationDensity,
		CritDisasterLosses:        d.DisasterLosses,
		CritWaterConsumption:      d.WaterConsumption,
		CritDisposableIncome:      d.DisposableIncome,
	}
}

// EnvironmentalData holds the environmental criterion values for one site.
// Hydropower and WindResources are abundance indices in [0,1].
type EnvironmentalData struct {
	AnnualTemperature float64 `json:"annual_temperature"` // degrees C
	Hydropower        float64 `json:"hydropower_resources"`
	WindResources     float64 `json:"wind_resources"`
	AirQualityRate    float64 `json:"air_quality_rate"` // percent of good-air days
}

// Values returns the dataset as a criterion value set.
func (d EnvironmentalData) Values() map[string]float64 {
	return map[string]float64{
		CritAnnualTemperature: d.AnnualTemperature,
		CritHydropower:        d.Hydropower,
		CritWindResources:     d.WindResources,
		CritAirQualityRate:    d.AirQualityRate,
	}
}

// EnergyData holds the energy-resource criterion values for one site.
type EnergyData struct {
	SolarIrradiance   float64 `json:"solar_irradiance"` // kWh/m2 per year
	WindSpeed         float64 `json:"wind_speed"`       // m/s annual mean
	RenewableCoverage float64 `json:"renewable_coverage"` // percent
}

// Values returns the dataset as a criterion value set.
func (d EnergyData) Values() map[string]float64 {
	return map[string]float64{
		CritSolarIrradiance:   d.SolarIrradiance,
		CritWindSpeed:         d.WindSpeed,
		CritRenewableCoverage: d.RenewableCoverage,
	}
}
