// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/config"
)

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 15*time.Minute, c.TimeLimit)
	assert.Equal(t, "gini", c.Backend)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	doc := `
backend: gophersat
time_limit: 90s
search_strategy: linear
iteration_strategy: linear
witness:
  file: ws.yaml
log:
  format: json
`
	c, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)

	want := config.Default()
	want.Backend = "gophersat"
	want.TimeLimit = 90 * time.Second
	want.SearchStrategy = "linear"
	want.IterationStrategy = "linear"
	want.Witness.File = "ws.yaml"
	want.Log.Format = "json"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	c, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown backend":  "backend: cplex\n",
		"negative tol":     "opt_tolerance: -1\n",
		"bad strategy":     "search_strategy: golden\n",
		"bad iteration":    "iteration_strategy: random\n",
		"zero workers":     "workers: 0\n",
		"bad log level":    "log:\n  level: loud\n",
		"bad metrics addr": "metrics_addr: nowhere\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(strings.NewReader("no_such_key: 1\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	in := config.Default()
	in.MetricsAddr = ":9090"
	in.TimeLimit = 2 * time.Second

	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, in))
	out, err := config.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
