package network

import (
	"testing"

	"github.com/softlock-games/viewfinder/shared/messages"
	"github.com/stretchr/testify/assert"
)

func TestNewClientStartsDisconnected(t *testing.T) {
	c := NewClient()

	assert.Equal(t, StateDisconnected, c.State())
	assert.NoError(t, c.LastError())
	assert.Nil(t, c.LatestSnapshot())
}

func TestApplyJoinAcceptedRecordsRigParameters(t *testing.T) {
	c := NewClient()

	c.applyJoinAccepted(messages.JoinAccepted{
		ServerName: "studio director",
		TickRate:   20,
		Stage:      "studio",
	})

	assert.Equal(t, StateJoinedRig, c.State())
	assert.Equal(t, "studio director", c.ServerName())
	assert.Equal(t, 20, c.TickRate())
	assert.Equal(t, "studio", c.Stage())
}

func TestSendMessageRequiresConnection(t *testing.T) {
	c := NewClient()

	assert.Error(t, c.SendMessage(messages.ActivateCamera{Slot: 1}))
}
