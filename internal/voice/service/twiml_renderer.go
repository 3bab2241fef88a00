package service

import (
	"bytes"
	"encoding/xml"

	apperrors "github.com/allisson/voice-token-server/internal/errors"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

// twimlResponse is the root of a call-control document.
type twimlResponse struct {
	XMLName xml.Name  `xml:"Response"`
	Dial    twimlDial `xml:"Dial"`
}

// twimlDial holds exactly one of Number or Client.
type twimlDial struct {
	CallerID string `xml:"callerId,attr,omitempty"`
	Number   string `xml:"Number,omitempty"`
	Client   string `xml:"Client,omitempty"`
}

// twimlRenderer implements CallDocumentRenderer producing TwiML.
type twimlRenderer struct{}

// NewTwiMLRenderer creates a new CallDocumentRenderer producing TwiML.
func NewTwiMLRenderer() CallDocumentRenderer {
	return &twimlRenderer{}
}

// RenderDial renders a <Response><Dial> document for target.
func (r *twimlRenderer) RenderDial(target voiceDomain.DialTarget) ([]byte, error) {
	if target.Value == "" {
		return nil, voiceDomain.ErrEmptyDialTarget
	}

	var dial twimlDial
	switch target.Kind {
	case voiceDomain.TargetNumber:
		dial = twimlDial{CallerID: target.CallerID, Number: target.Value}
	case voiceDomain.TargetClient:
		dial = twimlDial{Client: target.Value}
	default:
		return nil, apperrors.Wrapf(voiceDomain.ErrUnknownTargetKind, "kind %q", target.Kind)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(twimlResponse{Dial: dial}); err != nil {
		return nil, apperrors.Wrap(err, "failed to encode call-control document")
	}

	return buf.Bytes(), nil
}
