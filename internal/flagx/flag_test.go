package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "flag with separate value",
			args:    []string{"-f", "banque.json", "-x", "junk"},
			allowed: []string{"-f"},
			want:    []string{"-f", "banque.json"},
		},
		{
			name:    "flag=value form",
			args:    []string{"-f=banque.json", "-x=junk"},
			allowed: []string{"-f"},
			want:    []string{"-f=banque.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-f", "-s", "dir"},
			allowed: []string{"-f", "-s"},
			want:    []string{"-f", "-s", "dir"},
		},
		{
			name:    "non-flag arguments are dropped",
			args:    []string{"positional", "-f", "banque.json"},
			allowed: []string{"-f"},
			want:    []string{"-f", "banque.json"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-f", "banque.json"},
			allowed: nil,
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-f"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"banque", "-c", "conf.json", "-f", "ledger.json"}
	assert.Equal(t, "conf.json", ConfigFileFlag())

	os.Args = []string{"banque", "-config=other.json"}
	assert.Equal(t, "other.json", ConfigFileFlag())

	os.Args = []string{"banque", "-f", "ledger.json"}
	assert.Equal(t, "", ConfigFileFlag())
}
