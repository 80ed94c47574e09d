package render

import (
	"fmt"

	"sparse-life/internal/core"
	"sparse-life/internal/view"
	"sparse-life/pkg/life"
)

// Stats assembles the overlay lines for one frame.
func Stats(st life.State, cam *view.Settings, visible int, clock *core.FrameClock) core.ParameterSnapshot {
	area := cam.RenderArea()
	canvas := cam.CanvasSize()
	sim := core.ParameterGroup{
		Name: "Simulation",
		Params: []core.Parameter{
			core.Uint64Param("frame", "Frame", st.Generation),
			core.IntParam("points", "Total points", st.Live.Len()),
			core.IntParam("visible", "Points on screen", visible),
		},
	}
	camera := core.ParameterGroup{
		Name: "Camera",
		Params: []core.Parameter{
			core.FloatParam("zoom", "Zoom", cam.Zoom()),
			core.StringParam("drag", "Drag direction", string(cam.DragDirection())),
			core.StringParam("zoomdir", "Zoom direction", string(cam.ZoomDirection())),
			core.StringParam("area", "Render area", fmt.Sprintf("(%.1f, %.1f)", area.X, area.Y)),
			core.StringParam("canvas", "Canvas size", fmt.Sprintf("%dx%d", canvas.W, canvas.H)),
		},
	}
	groups := []core.ParameterGroup{sim, camera}
	if clock != nil {
		groups = append(groups, core.ParameterGroup{
			Name: "Timing",
			Params: []core.Parameter{
				core.FloatParam("fps", "FPS", clock.FPS()),
				core.DurationParam("update", "Time to update", clock.UpdateTime()),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}
