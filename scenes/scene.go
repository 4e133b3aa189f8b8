package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a screen the game loop hands updates and draws to.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}
