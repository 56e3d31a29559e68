package hal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMAC(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MAC
		wantErr bool
	}{
		{name: "colon", input: "02:11:22:33:44:55", want: MAC{0x02, 0x11, 0x22, 0x33, 0x44, 0x55}},
		{name: "dash", input: "02-11-22-33-44-55", want: MAC{0x02, 0x11, 0x22, 0x33, 0x44, 0x55}},
		{name: "garbage", input: "not-a-mac", wantErr: true},
		{name: "EUI-64", input: "02:11:22:33:44:55:66:77", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMAC(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidMAC), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "02:11:22:33:44:55", got.String())
		})
	}
}

func TestMACIsZero(t *testing.T) {
	assert.True(t, MAC{}.IsZero())
	assert.False(t, MAC{0, 0, 0, 0, 0, 1}.IsZero())
}

func TestConfigRequestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfigRequest().Validate())
	assert.NoError(t, ConfigRequest{ClusterLow: 7, ClusterHigh: 7}.Validate())

	err := ConfigRequest{ClusterLow: 8, ClusterHigh: 7}.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigRequestYAML(t *testing.T) {
	input := "support5g: true\nmasterPreference: 111\nclusterLow: 5\nclusterHigh: 100\n"

	var c ConfigRequest
	require.NoError(t, yaml.Unmarshal([]byte(input), &c))
	assert.Equal(t, ConfigRequest{Support5g: true, MasterPreference: 111, ClusterLow: 5, ClusterHigh: 100}, c)
	assert.Equal(t, "{5g=true pref=111 cluster=[5,100]}", c.String())
}
