// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/logging"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "debug", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.Level)
	l.WithField("k", 1).Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = logging.New(&buf, "loud", "text")
	require.Error(t, err)

	_, err = logging.New(&buf, "info", "xml")
	require.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, logging.OrDiscard(nil))
	l := logrus.New()
	assert.Same(t, l, logging.OrDiscard(l))
}
