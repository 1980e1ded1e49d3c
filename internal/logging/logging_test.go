package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

func TestNewWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)
	logger.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, false).Debug("quiet")
	assert.Empty(t, buf.String())

	NewWithWriter(&buf, true).Debug("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestCredentialSecretIsRedacted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)

	cred := types.CredentialRef{DisplayName: "work key", Secret: "sk-ant-supersecret"}
	logger.Info("using credential", "credential", cred)

	out := buf.String()
	assert.NotContains(t, out, "supersecret")
	assert.Contains(t, out, "work key")
}
