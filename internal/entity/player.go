package entity

import "fmt"

type Kind string

const (
	KindHuman Kind = "human"
	KindBot   Kind = "bot"
)

type Player struct {
	Name string
	Kind Kind
	Mark Mark
}

func NewHumanPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Kind: KindHuman, Mark: mark}
}

func NewBotPlayer(name string, mark Mark) *Player {
	return &Player{Name: name, Kind: KindBot, Mark: mark}
}

func (that *Player) IsBot() bool {
	return that.Kind == KindBot
}

func (that *Player) String() string {
	return fmt.Sprintf("%s (%s)", that.Name, that.Mark)
}
