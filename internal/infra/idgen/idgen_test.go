package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_IsUUID(t *testing.T) {
	g := New("https://meet.google.com/kezya-")

	a, b := g.NewID(), g.NewID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestMeetLink_UsesPrefix(t *testing.T) {
	g := New("https://meet.google.com/kezya-")

	link := g.MeetLink()

	require.True(t, strings.HasPrefix(link, "https://meet.google.com/kezya-"))
	suffix := strings.TrimPrefix(link, "https://meet.google.com/kezya-")
	assert.Len(t, suffix, 12)
	assert.NotEqual(t, link, g.MeetLink())
}
