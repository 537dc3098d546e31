package bodies_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/celestial"
	"github.com/noodlebox/celestial/bodies"
)

func TestDefault(t *testing.T) {
	table := bodies.Default()
	assert.Equal(t, []string{
		"Mercury", "Venus", "Earth", "Mars",
		"Jupiter", "Saturn", "Uranus", "Neptune",
	}, table.Names())
}

func TestDefaultBodyMaximums(t *testing.T) {
	want := map[string]string{
		"Mercury": "1407:36:00",
		"Venus":   "5832:36:00",
		"Earth":   "23:56:00",
		"Mars":    "24:36:00",
		"Jupiter": "9:52:00",
		"Saturn":  "10:36:00",
		"Uranus":  "17:12:00",
		"Neptune": "16:04:00",
	}
	for _, b := range bodies.Default().Bodies {
		t.Run(b.Name, func(t *testing.T) {
			c := b.NewClock()
			assert.Equal(t, want[b.Name], c.BodyMaximums())
			assert.Equal(t, "0:00:00", c.MilitaryTime())
		})
	}
}

func TestLookup(t *testing.T) {
	table := bodies.Default()

	b, err := table.Lookup("mars")
	require.NoError(t, err)
	assert.Equal(t, bodies.Body{Name: "Mars", Hours: 24, Minutes: 37}, b)

	_, err = table.Lookup("Pluto")
	require.ErrorIs(t, err, celestial.ErrNotFound)
}

func TestParse(t *testing.T) {
	table, err := bodies.Parse([]byte(`
bodies:
  - name: Io
    hours: 42
    minutes: 28
`))
	require.NoError(t, err)
	require.Len(t, table.Bodies, 1)
	assert.Equal(t, bodies.Body{Name: "Io", Hours: 42, Minutes: 28}, table.Bodies[0])
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "empty",
			input:   "bodies: []\n",
			wantMsg: "empty",
		},
		{
			name:    "missing name",
			input:   "bodies:\n  - hours: 3\n",
			wantMsg: "name is required",
		},
		{
			name:    "duplicate",
			input:   "bodies:\n  - {name: Io, hours: 3}\n  - {name: io, hours: 4}\n",
			wantMsg: "duplicate name",
		},
		{
			name:    "zero hours",
			input:   "bodies:\n  - {name: Io, hours: 0}\n",
			wantMsg: "hours must be at least 1",
		},
		{
			name:    "negative minutes",
			input:   "bodies:\n  - {name: Io, hours: 3, minutes: -1}\n",
			wantMsg: "minutes must not be negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bodies.Parse([]byte(tt.input))
			require.ErrorIs(t, err, celestial.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := bodies.Parse([]byte("bodies:\n  - {name: Io, hours: 3, moons: 0}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing body table")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bodies:\n  - {name: Io, hours: 42, minutes: 28}\n"), 0o600))

	table, err := bodies.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Io"}, table.Names())

	_, err = bodies.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
