package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrita/tetris"
	"github.com/plus3/tetrita/textboard"
)

// Inspector shows the game's state machine, counters and board.
type Inspector struct {
	snapshot func() tetris.Snapshot
	showGrid bool
}

// NewInspector reads the game through snapshot every frame.
func NewInspector(snapshot func() tetris.Snapshot) *Inspector {
	return &Inspector{snapshot: snapshot, showGrid: true}
}

func (in *Inspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 520), imgui.CondOnce)

	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	s := in.snapshot()

	imgui.Text(fmt.Sprintf("State: %s", s.State))
	imgui.Text(fmt.Sprintf("Frame: %d", s.Frame))
	imgui.Text(fmt.Sprintf("Speed: %.3f rows/tick", s.Speed))
	if s.Accelerating {
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(1, 0.6, 0.2, 1), "(fast)")
	}
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("Counters", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Counter")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()
		for _, row := range textboard.Summary(&s).Rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row[0])
			imgui.TableNextColumn()
			imgui.Text(row[1])
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Pieces") {
		imgui.BulletText(fmt.Sprintf("current: %d rot %d at (%d, %.2f)",
			s.Current.Index, s.Current.Rotation, s.Current.Col, s.Current.Row))
		for i, p := range s.Next {
			imgui.BulletText(fmt.Sprintf("next %d: %d", i, p.Index))
		}
		if n := s.Completions.Count(); n > 0 {
			imgui.BulletText(fmt.Sprintf("completing rows %v", s.Completions.Rows()))
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Board", &in.showGrid)
	if in.showGrid {
		for _, line := range textboard.ASCII.Lines(&s) {
			imgui.Text(line)
		}
	}

	imgui.End()
}
