package priestleytaylor

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Site parameters of a PET run. The coefficients default to the documented
// cloudiness values; every field is overridable per run, no global state.
type SiteConfig struct {
	Elevation float64 `yaml:"elevation"` // station elevation [m]
	Albedo    float64 `yaml:"albedo"`    // surface reflectivity [0-1]
	Ac        float64 `yaml:"ac"`        // cloudiness coefficient (default 0.72)
	Bc        float64 `yaml:"bc"`        // cloudiness coefficient (default 0.28)
}

// Reads a site-parameter YAML file over the given defaults: fields absent
// from the file keep their incoming values.
func LoadSiteConfig(path string, defaults SiteConfig) (SiteConfig, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return defaults, err
	}
	config := defaults
	if err := yaml.Unmarshal(f, &config); err != nil {
		return defaults, err
	}
	return config, nil
}
