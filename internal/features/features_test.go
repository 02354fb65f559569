package features

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Decoding a payload whose value for every field equals its column index must
// yield 0..n-1 from Vector, which pins Vector to the Fields order.
func TestVectorOrderMatchesFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		vector func(data []byte) ([]float64, error)
	}{
		{"health", HealthFields, func(data []byte) ([]float64, error) {
			var in HealthInput
			err := json.Unmarshal(data, &in)
			return in.Vector(), err
		}},
		{"carbon", CarbonFields, func(data []byte) ([]float64, error) {
			var in CarbonInput
			err := json.Unmarshal(data, &in)
			return in.Vector(), err
		}},
		{"surge", SurgeFields, func(data []byte) ([]float64, error) {
			var in SurgeInput
			err := json.Unmarshal(data, &in)
			return in.Vector(), err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]int{}
			want := make([]float64, len(tt.fields))
			for i, f := range tt.fields {
				payload[f.Name] = i
				want[i] = float64(i)
			}
			data, err := json.Marshal(payload)
			require.NoError(t, err)

			got, err := tt.vector(data)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFieldCounts(t *testing.T) {
	assert.Len(t, HealthFields, 11)
	assert.Len(t, CarbonFields, 7)
	assert.Len(t, SurgeFields, 7)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"avg_temp", "humidity"}, Names(SurgeFields[:2]))
}
