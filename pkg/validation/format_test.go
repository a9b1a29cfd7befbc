package validation

import (
	"testing"

	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{constants.OutputFormatPretty, false},
		{constants.OutputFormatCSV, false},
		{constants.OutputFormatJSON, false},
		{"", true},
		{"JSON", true},
		{" csv", true},
		{"yaml", true},
		{"table", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "pretty, csv or json")
			assert.Contains(t, err.Error(), "got "+tt.format)
		})
	}
}
