package service

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/voice-token-server/internal/errors"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

func TestTwiMLRenderer_RenderDial(t *testing.T) {
	renderer := NewTwiMLRenderer()

	t.Run("Success_Number", func(t *testing.T) {
		document, err := renderer.RenderDial(voiceDomain.DialTarget{
			Kind:     voiceDomain.TargetNumber,
			Value:    "+15551234567",
			CallerID: "+15550001111",
		})
		require.NoError(t, err)

		expected := xml.Header +
			`<Response><Dial callerId="+15550001111"><Number>+15551234567</Number></Dial></Response>`
		assert.Equal(t, expected, string(document))
	})

	t.Run("Success_Client", func(t *testing.T) {
		document, err := renderer.RenderDial(voiceDomain.DialTarget{
			Kind:  voiceDomain.TargetClient,
			Value: "alice",
		})
		require.NoError(t, err)

		expected := xml.Header + `<Response><Dial><Client>alice</Client></Dial></Response>`
		assert.Equal(t, expected, string(document))
	})

	t.Run("Success_ClientIgnoresCallerID", func(t *testing.T) {
		document, err := renderer.RenderDial(voiceDomain.DialTarget{
			Kind:     voiceDomain.TargetClient,
			Value:    "alice",
			CallerID: "+15550001111",
		})
		require.NoError(t, err)
		assert.NotContains(t, string(document), "callerId")
	})

	t.Run("Success_EscapesIdentity", func(t *testing.T) {
		document, err := renderer.RenderDial(voiceDomain.DialTarget{
			Kind:  voiceDomain.TargetClient,
			Value: `<Hangup/>&"x"`,
		})
		require.NoError(t, err)
		assert.NotContains(t, string(document), "<Hangup/>")
		assert.Contains(t, string(document), "&lt;Hangup/&gt;&amp;")

		var parsed struct {
			Dial struct {
				Client string `xml:"Client"`
			} `xml:"Dial"`
		}
		require.NoError(t, xml.Unmarshal(document, &parsed))
		assert.Equal(t, `<Hangup/>&"x"`, parsed.Dial.Client)
	})

	t.Run("Success_ExactlyOneDial", func(t *testing.T) {
		document, err := renderer.RenderDial(voiceDomain.DialTarget{
			Kind:  voiceDomain.TargetClient,
			Value: "bob",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(document), "<Dial"))
		assert.Equal(t, 0, strings.Count(string(document), "<Number"))
	})

	t.Run("Error_EmptyValue", func(t *testing.T) {
		document, err := renderer.RenderDial(voiceDomain.DialTarget{Kind: voiceDomain.TargetClient})
		assert.Nil(t, document)
		assert.ErrorIs(t, err, voiceDomain.ErrEmptyDialTarget)
	})

	t.Run("Error_UnknownKind", func(t *testing.T) {
		document, err := renderer.RenderDial(voiceDomain.DialTarget{Kind: "sip", Value: "sip:alice@example.com"})
		assert.Nil(t, document)
		assert.True(t, apperrors.Is(err, voiceDomain.ErrUnknownTargetKind))
	})
}
