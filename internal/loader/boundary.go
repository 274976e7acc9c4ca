package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
)

// regionProperty is the feature property naming the state or union territory.
const regionProperty = "st_nm"

// LoadBoundaries parses the GeoJSON boundary file and drops the excluded
// island territories. Properties and geometry payloads are carried through
// byte-for-byte; only the region-name property is inspected.
func LoadBoundaries(path string) (domain.BoundaryCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.BoundaryCollection{}, fmt.Errorf("read boundary file: %w", err)
	}

	var raw struct {
		Type     string `json:"type"`
		Features []struct {
			Type       string          `json:"type"`
			Properties json.RawMessage `json:"properties"`
			Geometry   json.RawMessage `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.BoundaryCollection{}, &domain.ParseError{
			File: path, Msg: "not valid GeoJSON", Err: err,
		}
	}
	if raw.Type != "FeatureCollection" {
		return domain.BoundaryCollection{}, &domain.ParseError{
			File: path, Msg: fmt.Sprintf("expected a FeatureCollection, got %q", raw.Type),
		}
	}

	out := domain.BoundaryCollection{Type: raw.Type}
	for i, feat := range raw.Features {
		region, err := featureRegion(path, i+1, feat.Properties)
		if err != nil {
			return domain.BoundaryCollection{}, err
		}
		if domain.IsExcludedBoundary(region) {
			continue
		}
		out.Features = append(out.Features, domain.BoundaryFeature{
			Type:       feat.Type,
			Properties: feat.Properties,
			Geometry:   feat.Geometry,
			Region:     region,
		})
	}
	return out, nil
}

// featureRegion extracts the region name from a feature's properties.
func featureRegion(path string, index int, properties json.RawMessage) (string, error) {
	var props map[string]json.RawMessage
	if err := json.Unmarshal(properties, &props); err != nil {
		return "", &domain.ParseError{
			File: path, Row: index, Field: regionProperty,
			Msg: "feature has no properties object", Err: err,
		}
	}

	var region string
	if rawName, ok := props[regionProperty]; ok {
		if err := json.Unmarshal(rawName, &region); err != nil {
			return "", &domain.ParseError{
				File: path, Row: index, Field: regionProperty,
				Msg: "region name property is not a string", Err: err,
			}
		}
	}
	if region == "" {
		return "", &domain.ParseError{
			File: path, Row: index, Field: regionProperty,
			Msg: "feature is missing its region name property",
		}
	}
	return region, nil
}
