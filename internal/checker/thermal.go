package checker

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ThermalConfig is the decoded shape of a thermal JSON config file.
// Only the Sensors section carries validation rules.
type ThermalConfig struct {
	Sensors []ThermalSensor `json:"Sensors"`
}

// ThermalSensor describes a derived-temperature formula. The parallel
// arrays are decoded as raw messages since only their lengths matter;
// a nil slice means the field was absent from the document, which
// disables the checks that need it.
type ThermalSensor struct {
	Name            string            `json:"Name"`
	Combination     []json.RawMessage `json:"Combination"`
	Coefficient     []json.RawMessage `json:"Coefficient"`
	CombinationType []json.RawMessage `json:"CombinationType"`
	CoefficientType []json.RawMessage `json:"CoefficientType"`
}

// CheckThermal validates that each sensor's parallel arrays agree in
// length pairwise: Combination with Coefficient, Combination with
// CombinationType, and Coefficient with CoefficientType. A check only
// applies when its second member is present. The first mismatch aborts.
func CheckThermal(path string, cfg ThermalConfig) error {
	for _, sensor := range cfg.Sensors {
		if err := checkSensor(sensor); err != nil {
			return fmt.Errorf("%s: %s: %s", path, sensor.Name, err)
		}
	}
	return nil
}

func checkSensor(sensor ThermalSensor) error {
	combinationSize := len(sensor.Combination)
	coefficientSize := len(sensor.Coefficient)

	if sensor.Coefficient != nil && combinationSize != coefficientSize {
		return errors.New("Combination size does not match with Coefficient size")
	}

	if sensor.CombinationType != nil && combinationSize != len(sensor.CombinationType) {
		return errors.New("Combination size does not match with CombinationType size")
	}

	if sensor.CoefficientType != nil && coefficientSize != len(sensor.CoefficientType) {
		return errors.New("Coefficient size does not match with CoefficientType size")
	}

	return nil
}
