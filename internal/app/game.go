package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Game is a game in the library.
type Game struct {
	ID         int64
	Identifier string // content hash of the ROM
	Name       string
	GameType   string // system, e.g. "gbc"
	ArtworkURL string // empty when no artwork is set
}

// SaveStateType is the kind of a save state.
type SaveStateType uint

const (
	SaveStateAuto SaveStateType = iota
	SaveStateQuick
	SaveStateGeneral
	SaveStateLocked
)

func (t SaveStateType) String() string {
	switch t {
	case SaveStateAuto:
		return "auto"
	case SaveStateQuick:
		return "quick"
	case SaveStateGeneral:
		return "general"
	case SaveStateLocked:
		return "locked"
	}
	return fmt.Sprintf("type%d", uint(t))
}

// SaveState is a snapshot of a running game.
type SaveState struct {
	ID         int64
	Identifier uuid.UUID
	GameID     int64
	Type       SaveStateType
	Name       string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// GameMetadata is the information the games database provides for a game.
type GameMetadata struct {
	Identifier string
	Name       string
	ArtworkURL string
}

// SyncService identifies a cloud service used for syncing the library.
type SyncService string

const (
	SyncServiceGoogleDrive SyncService = "googleDrive"
	SyncServiceDropbox     SyncService = "dropbox"
)

func (s SyncService) DisplayName() string {
	switch s {
	case SyncServiceGoogleDrive:
		return "Google Drive"
	case SyncServiceDropbox:
		return "Dropbox"
	}
	return string(s)
}

// SyncAccount is the account used for syncing the library.
type SyncAccount struct {
	Service      SyncService
	RefreshToken string
	UpdatedAt    time.Time
}
