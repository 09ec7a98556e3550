package provider

import (
	"context"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

// siteRecord bundles the three datasets for one known site.
type siteRecord struct {
	Economic      model.EconomicData
	Environmental model.EnvironmentalData
	Energy        model.EnergyData
}

// siteTable is the baked reference dataset for known candidate cities.
// Values come from public statistical yearbooks and resource atlases;
// hydropower and wind resources are abundance indices in [0,1].
var siteTable = map[string]siteRecord{
	"beijing": {
		Economic:      model.EconomicData{InternetPenetration: 85.0, TransportationDensity: 1.2, DisasterLosses: 0.5, WaterConsumption: 45.0, DisposableIncome: 75000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 12.9, Hydropower: 0.30, WindResources: 0.60, AirQualityRate: 67},
		Energy:        model.EnergyData{SolarIrradiance: 1500, WindSpeed: 2.8, RenewableCoverage: 25},
	},
	"shanghai": {
		Economic:      model.EconomicData{InternetPenetration: 88.0, TransportationDensity: 1.5, DisasterLosses: 0.3, WaterConsumption: 40.0, DisposableIncome: 78000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 17.1, Hydropower: 0.40, WindResources: 0.70, AirQualityRate: 87},
		Energy:        model.EnergyData{SolarIrradiance: 1300, WindSpeed: 3.5, RenewableCoverage: 30},
	},
	"shenzhen": {
		Economic:      model.EconomicData{InternetPenetration: 92.0, TransportationDensity: 1.8, DisasterLosses: 0.2, WaterConsumption: 35.0, DisposableIncome: 82000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 23.0, Hydropower: 0.50, WindResources: 0.60, AirQualityRate: 96},
		Energy:        model.EnergyData{SolarIrradiance: 1350, WindSpeed: 3.0, RenewableCoverage: 28},
	},
	"hangzhou": {
		Economic:      model.EconomicData{InternetPenetration: 87.0, TransportationDensity: 1.3, DisasterLosses: 0.4, WaterConsumption: 42.0, DisposableIncome: 76000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 17.0, Hydropower: 0.70, WindResources: 0.50, AirQualityRate: 85},
		Energy:        model.EnergyData{SolarIrradiance: 1250, WindSpeed: 2.5, RenewableCoverage: 35},
	},
	"zhongwei": {
		Economic:      model.EconomicData{InternetPenetration: 65.0, TransportationDensity: 0.8, DisasterLosses: 0.1, WaterConsumption: 25.0, DisposableIncome: 45000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 9.5, Hydropower: 0.60, WindResources: 0.80, AirQualityRate: 88},
		Energy:        model.EnergyData{SolarIrradiance: 1750, WindSpeed: 4.2, RenewableCoverage: 75},
	},
	"guiyang": {
		Economic:      model.EconomicData{InternetPenetration: 70.0, TransportationDensity: 1.0, DisasterLosses: 0.2, WaterConsumption: 30.0, DisposableIncome: 50000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 15.3, Hydropower: 0.90, WindResources: 0.40, AirQualityRate: 95},
		Energy:        model.EnergyData{SolarIrradiance: 1000, WindSpeed: 2.2, RenewableCoverage: 60},
	},
	"guangzhou": {
		Economic:      model.EconomicData{InternetPenetration: 89.0, TransportationDensity: 1.6, DisasterLosses: 0.3, WaterConsumption: 38.0, DisposableIncome: 80000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 22.6, Hydropower: 0.70, WindResources: 0.50, AirQualityRate: 90},
		Energy:        model.EnergyData{SolarIrradiance: 1300, WindSpeed: 2.9, RenewableCoverage: 32},
	},
	"lanzhou": {
		Economic:      model.EconomicData{InternetPenetration: 68.0, TransportationDensity: 0.9, DisasterLosses: 0.2, WaterConsumption: 28.0, DisposableIncome: 48000},
		Environmental: model.EnvironmentalData{AnnualTemperature: 10.3, Hydropower: 0.80, WindResources: 0.50, AirQualityRate: 82},
		Energy:        model.EnergyData{SolarIrradiance: 1650, WindSpeed: 1.8, RenewableCoverage: 55},
	},
}

// StaticSource serves datasets from the baked site table, keyed by the
// location's city name (case-insensitive). Sites outside the table return
// ErrUnknownSite.
type StaticSource struct{}

// NewStaticSource returns the table-backed data source.
func NewStaticSource() *StaticSource { return &StaticSource{} }

func (s *StaticSource) lookup(loc model.Location) (siteRecord, error) {
	key := strings.ToLower(strings.TrimSpace(loc.City))
	if key == "" {
		return siteRecord{}, eris.New("provider: location has no city name")
	}
	rec, ok := siteTable[key]
	if !ok {
		return siteRecord{}, eris.Wrapf(ErrUnknownSite, "city %q", loc.City)
	}
	return rec, nil
}

// Economic returns the economic dataset for a known site.
func (s *StaticSource) Economic(_ context.Context, loc model.Location) (model.EconomicData, error) {
	rec, err := s.lookup(loc)
	if err != nil {
		return model.EconomicData{}, err
	}
	return rec.Economic, nil
}

// Environmental returns the environmental dataset for a known site.
func (s *StaticSource) Environmental(_ context.Context, loc model.Location) (model.EnvironmentalData, error) {
	rec, err := s.lookup(loc)
	if err != nil {
		return model.EnvironmentalData{}, err
	}
	return rec.Environmental, nil
}

// Energy returns the energy dataset for a known site.
func (s *StaticSource) Energy(_ context.Context, loc model.Location) (model.EnergyData, error) {
	rec, err := s.lookup(loc)
	if err != nil {
		return model.EnergyData{}, err
	}
	return rec.Energy, nil
}

// Sites lists the cities the static source knows, sorted for stable output.
func (s *StaticSource) Sites() []string {
	names := make([]string, 0, len(siteTable))
	for name := range siteTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
