package arkanoid

import "github.com/vovakirdan/arkanoid/internal/core"

// SpriteID names an image the platform knows how to draw.
type SpriteID int

const (
	SpriteBackground SpriteID = iota
	SpriteBall
	SpritePaddle
	SpriteBlock
	SpriteControlLeft
	SpriteControlRight
	SpriteReplay
)

// String returns a human-readable name for the sprite.
func (s SpriteID) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteBall:
		return "ball"
	case SpritePaddle:
		return "paddle"
	case SpriteBlock:
		return "block"
	case SpriteControlLeft:
		return "control-left"
	case SpriteControlRight:
		return "control-right"
	case SpriteReplay:
		return "replay"
	default:
		return "unknown"
	}
}

// Control and replay geometry, in field pixels.
const (
	ControlSize   = 90  // Side of each square steering control
	ControlInner  = 30  // Gap from the field's center line to a control
	ControlOuter  = 120 // Distance from the center line (and the bottom) to a control's far edge
	ReplayWidth   = 180
	ReplayHeight  = 60
	ReplayTop     = 750
	MessageOffset = 690 // Baseline of the result message
)

// Sprite is one image placed on the field.
type Sprite struct {
	ID   SpriteID
	Rect core.Rect
}

// Scene is everything a renderer needs to draw one frame, in draw order.
// Message is empty while the round is running.
type Scene struct {
	Field   Field
	Sprites []Sprite
	Message string
}

// Renderer draws a scene. The simulation never draws directly.
type Renderer interface {
	Draw(s Scene)
}

// Audio plays the sounds requested by core.EffectPlaySound.
type Audio interface {
	Play(s core.Sound)
}

// LeftControlRect returns the on-field square that steers the paddle left.
func LeftControlRect(f Field) core.Rect {
	return core.NewRect(f.Width/2-ControlOuter, f.Height-ControlOuter, ControlSize, ControlSize)
}

// RightControlRect returns the on-field square that steers the paddle right.
func RightControlRect(f Field) core.Rect {
	return core.NewRect(f.Width/2+ControlInner, f.Height-ControlOuter, ControlSize, ControlSize)
}

// ReplayRect returns the replay button shown once the round is over.
func ReplayRect(f Field) core.Rect {
	return core.NewRect((f.Width-ReplayWidth)/2, ReplayTop, ReplayWidth, ReplayHeight)
}

// Scene builds the frame for the current state: background, ball, paddle,
// controls, active blocks and, once finished, the replay button and message.
func (g *Game) Scene() Scene {
	f := g.Field()
	sprites := make([]Sprite, 0, len(g.blocks)+6)

	sprites = append(sprites,
		Sprite{ID: SpriteBackground, Rect: core.NewRect(0, 0, f.Width, f.Height)},
		Sprite{ID: SpriteBall, Rect: g.ball.Rect()},
		Sprite{ID: SpritePaddle, Rect: g.paddle.Rect()},
		Sprite{ID: SpriteControlLeft, Rect: LeftControlRect(f)},
		Sprite{ID: SpriteControlRight, Rect: RightControlRect(f)},
	)

	for i := range g.blocks {
		if g.blocks[i].Active {
			sprites = append(sprites, Sprite{ID: SpriteBlock, Rect: g.blocks[i].Rect()})
		}
	}

	scene := Scene{Field: f, Sprites: sprites}
	if g.state.GameFinished {
		scene.Sprites = append(scene.Sprites, Sprite{ID: SpriteReplay, Rect: ReplayRect(f)})
		scene.Message = g.outcome.Message()
	}

	return scene
}
