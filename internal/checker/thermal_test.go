package checker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeThermal(t *testing.T, doc string) ThermalConfig {
	t.Helper()

	var cfg ThermalConfig
	require.NoError(t, json.Unmarshal([]byte(doc), &cfg))
	return cfg
}

func TestCheckThermal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		doc           string
		expectedError string
	}{
		{
			name: "matching parallel arrays",
			doc: `{
				"Sensors": [
					{
						"Name": "VIRTUAL-SKIN",
						"Combination": ["quiet_therm", "disp_therm", "batt_therm"],
						"Coefficient": [0.5, 0.3, 0.2],
						"CombinationType": ["SENSOR", "SENSOR", "SENSOR"],
						"CoefficientType": ["CONSTANT", "CONSTANT", "CONSTANT"]
					}
				]
			}`,
		},
		{
			name: "combination and coefficient mismatch",
			doc: `{
				"Sensors": [
					{
						"Name": "VIRTUAL-SKIN",
						"Combination": ["quiet_therm", "disp_therm", "batt_therm"],
						"Coefficient": [0.5, 0.3]
					}
				]
			}`,
			expectedError: "thermal_info_config.json: VIRTUAL-SKIN: Combination size does not match with Coefficient size",
		},
		{
			name: "combination and combination type mismatch",
			doc: `{
				"Sensors": [
					{
						"Name": "VIRTUAL-SKIN",
						"Combination": ["quiet_therm", "disp_therm"],
						"CombinationType": ["SENSOR"]
					}
				]
			}`,
			expectedError: "thermal_info_config.json: VIRTUAL-SKIN: Combination size does not match with CombinationType size",
		},
		{
			name: "coefficient and coefficient type mismatch",
			doc: `{
				"Sensors": [
					{
						"Name": "VIRTUAL-SKIN",
						"Combination": ["quiet_therm", "disp_therm"],
						"Coefficient": [0.5, 0.5],
						"CoefficientType": ["CONSTANT"]
					}
				]
			}`,
			expectedError: "thermal_info_config.json: VIRTUAL-SKIN: Coefficient size does not match with CoefficientType size",
		},
		{
			name: "only combination present",
			doc: `{
				"Sensors": [
					{"Name": "VIRTUAL-SKIN", "Combination": ["quiet_therm", "disp_therm", "batt_therm"]}
				]
			}`,
		},
		{
			name: "coefficient present without combination",
			doc: `{
				"Sensors": [
					{"Name": "VIRTUAL-SKIN", "Coefficient": [0.5, 0.3]}
				]
			}`,
			expectedError: "thermal_info_config.json: VIRTUAL-SKIN: Combination size does not match with Coefficient size",
		},
		{
			name: "sensor without parallel arrays",
			doc: `{
				"Sensors": [
					{"Name": "battery"}
				]
			}`,
		},
		{
			name: "first mismatching sensor reported",
			doc: `{
				"Sensors": [
					{"Name": "OK-SENSOR", "Combination": ["a"], "Coefficient": [1]},
					{"Name": "BAD-ONE", "Combination": ["a", "b"], "Coefficient": [1]},
					{"Name": "BAD-TWO", "Combination": ["a"], "CombinationType": []}
				]
			}`,
			expectedError: "thermal_info_config.json: BAD-ONE: Combination size does not match with Coefficient size",
		},
		{
			name: "no sensors section",
			doc:  `{"Stats": {"Sampling": 10}}`,
		},
		{
			name: "empty sensors",
			doc:  `{"Sensors": []}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckThermal("thermal_info_config.json", decodeThermal(t, tc.doc))
			if tc.expectedError == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.expectedError)
		})
	}
}
