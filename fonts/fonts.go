package fonts

import (
	"fmt"
)

type Name string

const (
	Menu Name = "menu"
)

func (n Name) Get() *Atlas {
	return getAtlas(n)
}

var (
	atlases = map[Name]*Atlas{}
)

// Register makes an atlas available under name, replacing any previous one.
func Register(name Name, atlas *Atlas) {
	atlases[name] = atlas
}

func getAtlas(name Name) *Atlas {
	a, ok := atlases[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return a
}
