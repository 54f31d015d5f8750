package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mousePointer — id мыши среди касаний.
const mousePointer = -1

type pointer struct {
	ID   int
	X, Y int
}

// frameInput — нажатия мыши и касания за один кадр.
type frameInput struct {
	Pressed  []pointer
	Held     []pointer
	Released []pointer
	Cursor   image.Point
}

func readInput() frameInput {
	var in frameInput
	cx, cy := ebiten.CursorPosition()
	in.Cursor = image.Pt(cx, cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Pressed = append(in.Pressed, pointer{mousePointer, cx, cy})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Held = append(in.Held, pointer{mousePointer, cx, cy})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.Released = append(in.Released, pointer{mousePointer, cx, cy})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.Pressed = append(in.Pressed, pointer{int(id), x, y})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.Held = append(in.Held, pointer{int(id), x, y})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		in.Released = append(in.Released, pointer{int(id), x, y})
	}
	return in
}

func keyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
