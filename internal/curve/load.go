package curve

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type curveFile struct {
	Displacements []float64 `yaml:"displacements"`
	Forces        []float64 `yaml:"forces"`
}

// LoadYAML reads a curve from a yaml file with parallel `displacements`
// and `forces` arrays.
func LoadYAML(path string) (*ForceCurve, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf curveFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return FromSamples(cf.Displacements, cf.Forces)
}

// ReadCSV parses displacement,force rows. A non-numeric first row is
// treated as a header and skipped.
func ReadCSV(r io.Reader) (*ForceCurve, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	var displacements, forces []float64
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: need displacement and force columns", i+1)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		f, errF := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errF != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("row %d: invalid number", i+1)
		}
		displacements = append(displacements, x)
		forces = append(forces, f)
	}

	return FromSamples(displacements, forces)
}

// LoadCSV reads a curve from a csv file of displacement,force rows.
func LoadCSV(path string) (*ForceCurve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// Load picks the loader from the file extension: .csv for CSV, anything
// else is treated as yaml.
func Load(path string) (*ForceCurve, error) {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return LoadCSV(path)
	}
	return LoadYAML(path)
}
