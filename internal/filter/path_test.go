package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		paths     []string
		predicate Predicate
		expected  []string
	}{
		{
			name: "powerhint json files",
			paths: []string{
				"powerhint/powerhint.json",
				"thermal/thermal_info_config.json",
				"powerhint/README.md",
				"docs/powerhint.json.bak",
			},
			predicate: All(Suffix(".json"), Partial("powerhint")),
			expected:  []string{"powerhint/powerhint.json"},
		},
		{
			name: "thermal json files preserve order",
			paths: []string{
				"b/thermal_info_config.json",
				"a/thermal_info_config.json",
				"a/powerhint.json",
			},
			predicate: All(Suffix(".json"), Partial("thermal")),
			expected: []string{
				"b/thermal_info_config.json",
				"a/thermal_info_config.json",
			},
		},
		{
			name:      "case insensitive match",
			paths:     []string{"PowerHint/POWERHINT.JSON"},
			predicate: All(Suffix(".json"), Partial("powerhint")),
			expected:  []string{"PowerHint/POWERHINT.JSON"},
		},
		{
			name:      "no matches",
			paths:     []string{"a.txt", "b.yaml"},
			predicate: Suffix(".json"),
			expected:  []string{},
		},
		{
			name:      "empty input",
			paths:     nil,
			predicate: Suffix(".json"),
			expected:  []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Select(tc.paths, tc.predicate))
		})
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	always := Predicate(func(string) bool { return true })
	never := Predicate(func(string) bool { return false })

	assert.True(t, All()("anything"))
	assert.True(t, All(always, always)("anything"))
	assert.False(t, All(always, never)("anything"))
}
