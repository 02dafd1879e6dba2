package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "minimum", input: "10", want: 10},
		{name: "typical", input: "60", want: 60},
		{name: "too small", input: "9", wantErr: ErrIntervalTooSmall},
		{name: "zero", input: "0", wantErr: ErrIntervalTooSmall},
		{name: "empty", input: "", wantErr: ErrInvalidInterval},
		{name: "not a number", input: "ten", wantErr: ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateStart(t *testing.T) {
	assert.NoError(t, ValidateStart(10, NewModeSet(ModeKeyboard)))
	assert.NoError(t, ValidateStart(60, NewModeSet(ModeSuperClean)))
	assert.ErrorIs(t, ValidateStart(9, NewModeSet(ModeKeyboard)), ErrIntervalTooSmall)
	assert.ErrorIs(t, ValidateStart(30, 0), ErrNoModeSelected)
	// Interval problems are reported first.
	assert.ErrorIs(t, ValidateStart(1, 0), ErrIntervalTooSmall)
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	th, err = ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, th)

	_, err = ParseTheme("solarized")
	assert.Error(t, err)
}
