package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// UUID gera identificadores e sufixos de sala a partir de UUIDv4.
type UUID struct {
	linkPrefix string
}

func New(linkPrefix string) *UUID {
	return &UUID{linkPrefix: linkPrefix}
}

func (g *UUID) NewID() string {
	return uuid.NewString()
}

// MeetLink usa os 12 primeiros hex de um UUID como sufixo da sala.
func (g *UUID) MeetLink() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return g.linkPrefix + suffix
}
