// Package criteria defines the criterion catalogs used by the outranking
// engine and the normalization of raw criterion values onto a common scale.
package criteria

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/gridpoint-labs/sitescout/internal/model"
)

// Orientation states whether higher raw values are desirable for a criterion.
type Orientation string

const (
	Benefit Orientation = "benefit"
	Cost    Orientation = "cost"
)

// Criterion is one registered decision criterion. Weight is the criterion's
// share within its category; weights within a catalog sum to 1 by convention.
type Criterion struct {
	Name        string      `yaml:"name" json:"name"`
	Label       string      `yaml:"label,omitempty" json:"label,omitempty"`
	Weight      float64     `yaml:"weight" json:"weight"`
	Orientation Orientation `yaml:"orientation" json:"orientation"`
	Ideal       *float64    `yaml:"ideal,omitempty" json:"ideal,omitempty"`
}

// Catalog is an ordered, immutable set of criteria for one category.
// Order matters downstream: the first criterion's flow represents the
// category in the single-site outranking contract.
type Catalog struct {
	Category string      `yaml:"category" json:"category"`
	Criteria []Criterion `yaml:"criteria" json:"criteria"`
}

const idealTemperature = 15.0

var economicCatalog = Catalog{
	Category: "economic",
	Criteria: []Criterion{
		{Name: model.CritInternetPenetration, Label: "Internet penetration (%)", Weight: 0.25, Orientation: Benefit},
		{Name: model.CritTransportationDensity, Label: "Transportation density (km/km2)", Weight: 0.20, Orientation: Benefit},
		{Name: model.CritDisasterLosses, Label: "Direct disaster losses", Weight: 0.15, Orientation: Cost},
		{Name: model.CritWaterConsumption, Label: "Water consumption per unit GDP (m3)", Weight: 0.20, Orientation: Cost},
		{Name: model.CritDisposableIncome, Label: "Per-capita disposable income", Weight: 0.20, Orientation: Benefit},
	},
}

var environmentalCatalog = Catalog{
	Category: "environmental",
	Criteria: []Criterion{
		{Name: model.CritAnnualTemperature, Label: "Annual mean temperature (C)", Weight: 0.30, Orientation: Cost, Ideal: ptr(idealTemperature)},
		{Name: model.CritHydropower, Label: "Hydropower resources", Weight: 0.25, Orientation: Benefit},
		{Name: model.CritWindResources, Label: "Wind resources", Weight: 0.25, Orientation: Benefit},
		{Name: model.CritAirQualityRate, Label: "Good air quality rate (%)", Weight: 0.20, Orientation: Benefit},
	},
}

var energyCatalog = Catalog{
	Category: "energy",
	Criteria: []Criterion{
		{Name: model.CritSolarIrradiance, Label: "Annual solar irradiance (kWh/m2)", Weight: 0.40, Orientation: Benefit},
		{Name: model.CritWindSpeed, Label: "Mean wind speed (m/s)", Weight: 0.30, Orientation: Benefit},
		{Name: model.CritRenewableCoverage, Label: "Renewable coverage (%)", Weight: 0.30, Orientation: Benefit},
	},
}

// Economic returns a copy of the default economic criterion catalog.
func Economic() Catalog { return economicCatalog.clone() }

// Environmental returns a copy of the default environmental criterion catalog.
func Environmental() Catalog { return environmentalCatalog.clone() }

// Energy returns a copy of the default energy criterion catalog.
func Energy() Catalog { return energyCatalog.clone() }

func (c Catalog) clone() Catalog {
	out := Catalog{Category: c.Category, Criteria: make([]Criterion, len(c.Criteria))}
	copy(out.Criteria, c.Criteria)
	return out
}

// Names returns the criterion names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Criteria))
	for i, cr := range c.Criteria {
		names[i] = cr.Name
	}
	return names
}

// Validate checks catalog consistency: non-empty unique names, weights in
// (0,1], and a known orientation on every criterion.
func (c Catalog) Validate() error {
	if strings.TrimSpace(c.Category) == "" {
		return eris.New("criteria: catalog category is empty")
	}
	if len(c.Criteria) == 0 {
		return eris.Errorf("criteria: catalog %q has no criteria", c.Category)
	}

	seen := make(map[string]bool, len(c.Criteria))
	var errs []string
	for _, cr := range c.Criteria {
		if strings.TrimSpace(cr.Name) == "" {
			errs = append(errs, "criterion with empty name")
			continue
		}
		if seen[cr.Name] {
			errs = append(errs, fmt.Sprintf("duplicate criterion %q", cr.Name))
		}
		seen[cr.Name] = true
		if cr.Weight <= 0 || cr.Weight > 1 {
			errs = append(errs, fmt.Sprintf("criterion %q weight %v outside (0,1]", cr.Name, cr.Weight))
		}
		if cr.Orientation != Benefit && cr.Orientation != Cost {
			errs = append(errs, fmt.Sprintf("criterion %q has unknown orientation %q", cr.Name, cr.Orientation))
		}
	}
	if len(errs) > 0 {
		return eris.Errorf("criteria: invalid catalog %q: %s", c.Category, strings.Join(errs, "; "))
	}
	return nil
}

func ptr(f float64) *float64 { return &f }
