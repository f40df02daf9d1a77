package club

// ClubStore defines the interface for interacting with the club's data.
type ClubStore interface {
	GetConfig() (ClubConfig, error)
	SaveConfig(upd ConfigUpdate) (ClubConfig, error)
	ListPlayers() ([]Player, error)
	AddPlayer(p Player) (string, error)
	ListFounders() ([]Founder, error)
	AddFounder(f Founder) (string, error)
	Collections() ([]string, error)
	Ping() error
	Clear()
}
