package criteria

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadCatalogFile reads a criterion catalog from a YAML file and validates
// it. The file holds a single catalog document:
//
//	category: economic
//	criteria:
//	  - name: internet_penetration
//	    weight: 0.25
//	    orientation: benefit
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, eris.Wrapf(err, "criteria: read catalog file %s", path)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, eris.Wrapf(err, "criteria: parse catalog file %s", path)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
