package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyforgeco/studyforge/pkg/stream"
)

func TestEmitterFrameFormat(t *testing.T) {
	var buf bytes.Buffer
	em := newEmitter(&buf)

	require.NoError(t, em.progress("warming up"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "data: "))
	assert.True(t, strings.HasSuffix(out, "\n\n"))

	var ev stream.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(out), "data: ")), &ev))
	assert.Equal(t, stream.EventProgress, ev.Type)
	assert.Equal(t, "warming up", ev.Message)
}

func TestEmitterOneFramePerEvent(t *testing.T) {
	var buf bytes.Buffer
	em := newEmitter(&buf)

	require.NoError(t, em.content("first"))
	require.NoError(t, em.content("second"))
	require.NoError(t, em.errorEvent("wedged"))

	frames := strings.Split(strings.TrimSuffix(buf.String(), "\n\n"), "\n\n")
	require.Len(t, frames, 3)

	var last stream.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frames[2], "data: ")), &last))
	assert.Equal(t, stream.EventError, last.Type)
	assert.Equal(t, "wedged", last.Message)
}

func TestEmitterSectionCarriesRawJSON(t *testing.T) {
	var buf bytes.Buffer
	em := newEmitter(&buf)

	payload := json.RawMessage(`{"title":"Motion","body":"things move"}`)
	require.NoError(t, em.section(payload))

	var ev stream.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(buf.String()), "data: ")), &ev))
	assert.Equal(t, stream.EventSection, ev.Type)
	assert.JSONEq(t, string(payload), string(ev.Section))
}

// failWriter errors on the first write to exercise frame write failures.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestEmitterPropagatesWriteErrors(t *testing.T) {
	em := newEmitter(failWriter{})
	err := em.progress("never lands")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing event frame")
}
