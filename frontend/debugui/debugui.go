// Package debugui draws Dear ImGui inspection windows over the game.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrita/loop"
)

// Window renders one ImGui window per frame.
type Window interface {
	Render()
}

// WindowFunc adapts a function to a Window.
type WindowFunc func()

func (f WindowFunc) Render() { f() }

// InputState reports what ImGui wants to consume.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the ImGui backend and the registered windows.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	windows []Window
	input   InputState
}

// New creates the ImGui backend and the game window, which is sized w by h.
func New(title string, w, h int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, w, h)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{backend: backend}
}

// Add registers a window.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Input returns the capture state seen during the last tick.
func (o *Overlay) Input() InputState {
	return o.input
}

// Execute refreshes the input state and queues every window for rendering once the
// tick's systems have run.
func (o *Overlay) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.windows {
		frame.Commands.Defer(w.Render)
	}
}

func (o *Overlay) BeginFrame() { o.backend.BeginFrame() }
func (o *Overlay) EndFrame()   { o.backend.EndFrame() }

// Draw paints the ImGui frame on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(w, h int) {
	o.backend.Layout(w, h)
}
