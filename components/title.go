package components

import "github.com/yohamta/donburi"

// TitleData stores the state of the title screen
type TitleData struct {
	Prompt     string // Question asked when the player presses select
	LastAnswer string // Label of the most recently confirmed button
	Answers    int    // Number of confirmed prompts
}

var Title = donburi.NewComponentType[TitleData]()
