// Package render draws a game snapshot with ebiten vector primitives.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetrita/tetris"
)

const title = "TETRITA"

// Renderer draws snapshots. It keeps a few offscreen images and is not safe for
// concurrent use.
type Renderer struct {
	welcome string
	title   *ebiten.Image
	boxes   map[string]*ebiten.Image
}

// New creates a renderer whose start screen lists keys.
func New(keys map[tetris.Button][]string) *Renderer {
	w, h := textSize(title)
	img := ebiten.NewImage(w, h)
	ebitenutil.DebugPrint(img, title)
	return &Renderer{
		welcome: WelcomeText(keys),
		title:   img,
		boxes:   make(map[string]*ebiten.Image),
	}
}

// Draw renders s onto screen, which is expected to be ViewWidth by ViewHeight.
func (r *Renderer) Draw(screen *ebiten.Image, s *tetris.Snapshot) {
	fade := s.IntroFade()
	r.drawBackground(screen, fade, s.Level)

	if !s.State.In(tetris.Menus) {
		board := screen.SubImage(boardRect()).(*ebiten.Image)

		if s.State == tetris.Slamming {
			drawBlur(board, s.Current, s.Frame)
		}
		if s.State == tetris.Locking {
			drawLockFlash(board, s.Current, s.Progress())
		}
		drawBoard(board, &s.Board)
		if s.State != tetris.EndQuery {
			drawPattern(board, s.Current, 0, highlightColor(s.Current.Index))
		}
		if s.State == tetris.Completing && completionVisible(s.Frame) {
			drawCompletions(board, &s.Board, s.Completions)
		}

		if s.State.In(tetris.Falling) {
			drawGuide(screen, s.Current, s.Level)
			drawQueue(screen, s)
		}
	}

	if s.State == tetris.Paused {
		vector.DrawFilledRect(screen, 0, 0, ViewWidth, ViewHeight, withAlpha(white, 0.25), false)
		r.drawTextBox(screen, "Paused", 32, 120)
	}

	switch {
	case s.State.In(tetris.StartQuery | tetris.Intro):
		r.drawTextBox(screen, r.welcome, 20, 90)
	case s.State == tetris.EndQuery:
		r.drawTextBox(screen, endDialog, 32, 220)
	}

	if !s.State.In(tetris.Menus) {
		ebitenutil.DebugPrintAt(screen, ScoreText(s), 32, 105)
	}
}

func (r *Renderer) drawBackground(screen *ebiten.Image, fade float32, level int) {
	screen.Fill(backdrops[backdropIndex(level)])

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(3, 3)
	op.GeoM.Translate(30, 30)
	op.ColorScale.ScaleAlpha(clamp(fade / 0.25))
	screen.DrawImage(r.title, op)

	drawBackboard(screen, clamp((fade-0.5)/0.25), level)
}

// drawBackboard grows the board frame from its top left corner as mu goes from 0 to 1.
func drawBackboard(screen *ebiten.Image, mu float32, level int) {
	if mu <= 0 {
		return
	}
	w, h := float32(boardW)*mu, float32(boardH)*mu

	bottom := boardGradient(level)
	const bands = tetris.RowCount
	for i := range bands {
		t := float32(i) / (bands - 1)
		y := boardTop + h*float32(i)/bands
		vector.DrawFilledRect(screen, boardLeft, y, w, h/bands+0.5, lerp(gradientTop, bottom, t), false)
	}
	vector.StrokeRect(screen, boardLeft-0.5, boardTop-0.5, w+1, h+1, 1, outlineColor, false)
}

// drawTile fills a tile and outlines the sides that do not join another tile of the
// same piece.
func drawTile(dst *ebiten.Image, r rect, edge tetris.Edge, c color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, c, false)

	links := edge.Links()
	x0, y0, x1, y1 := r.X+0.5, r.Y+0.5, r.X+r.W-0.5, r.Y+r.H-0.5
	if !links.Has(tetris.LinkUp) {
		vector.StrokeLine(dst, x0, y0, x1, y0, 1, seamColor, false)
	}
	if !links.Has(tetris.LinkDown) {
		vector.StrokeLine(dst, x0, y1, x1, y1, 1, seamColor, false)
	}
	if !links.Has(tetris.LinkLeft) {
		vector.StrokeLine(dst, x0, y0, x0, y1, 1, seamColor, false)
	}
	if !links.Has(tetris.LinkRight) {
		vector.StrokeLine(dst, x1, y0, x1, y1, 1, seamColor, false)
	}
}

func drawBoard(dst *ebiten.Image, b *tetris.Board) {
	for row := range tetris.RowCount {
		for col := range tetris.ColCount {
			cell := b[row][col]
			if cell.Empty() {
				continue
			}
			drawTile(dst, tileRect(float32(col), float32(row)), cell.Edge, pieceColor(cell.Color))
		}
	}
}

// drawPattern draws the piece shifted dc columns from its position.
func drawPattern(dst *ebiten.Image, p tetris.Piece, dc float32, c color.Color) {
	for t := range p.Shape().Tiles() {
		r := tileRect(float32(p.Col+t.X)+dc, p.Row+float32(t.Y))
		drawTile(dst, r, t.Edge, c)
	}
}

func drawCompletions(dst *ebiten.Image, b *tetris.Board, c tetris.Completions) {
	for _, row := range c.Rows() {
		for col := range tetris.ColCount {
			drawTile(dst, tileRect(float32(col), float32(row)), b[row][col].Edge, white)
		}
	}
}

// drawLockFlash splits a locking piece into two fading ghosts drifting sideways.
func drawLockFlash(dst *ebiten.Image, p tetris.Piece, mu float32) {
	c := withAlpha(highlightColor(p.Index), 1-mu)
	drawPattern(dst, p, -2*mu, c)
	drawPattern(dst, p, 2*mu, c)
}

// drawBlur trails a slammed piece, longer the further it has fallen.
func drawBlur(dst *ebiten.Image, p tetris.Piece, frame int) {
	const steps = 8
	c := highlightColor(p.Index)
	length := float32(frame * tileSize)
	for x, top := range blurColumns(p) {
		r := tileRect(float32(p.Col+x), top)
		for i := range steps {
			seg := length / steps
			y := r.Y - seg*float32(i+1)
			vector.DrawFilledRect(dst, r.X, y, r.W, seg, withAlpha(c, 1-float32(i)/steps), false)
		}
	}
}

func drawGuide(dst *ebiten.Image, p tetris.Piece, level int) {
	alpha := float32(0.7)
	if backdropIndex(level) == 2 {
		alpha = 1
	}
	for _, r := range guideRects(p) {
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, withAlpha(white, alpha), false)
	}
}

// drawQueue shows the next piece. While a piece locks, the outgoing one shrinks and the
// one after it grows in its place.
func drawQueue(dst *ebiten.Image, s *tetris.Snapshot) {
	scales := queueScales(s)
	for i, p := range s.Next {
		if scales[i] <= 0 {
			continue
		}
		for _, t := range queueTiles(p.Index, scales[i]) {
			drawTile(dst, t.rect, t.edge, highlightColor(p.Index))
		}
	}
}

func (r *Renderer) drawTextBox(dst *ebiten.Image, text string, x, y int) {
	box := textBox(text, x, y)
	vector.DrawFilledRect(dst, box.X, box.Y, box.W, box.H, withAlpha(white, 0.75), false)
	vector.StrokeRect(dst, box.X, box.Y, box.W, box.H, 1, outlineColor, false)

	ink, ok := r.boxes[text]
	if !ok {
		ink = ebiten.NewImage(int(box.W), int(box.H))
		ebitenutil.DebugPrintAt(ink, text, textPadding, textPadding)
		r.boxes[text] = ink
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.Scale(0, 0.125, 0.25, 1)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(ink, op)
}
