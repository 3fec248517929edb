// Example demonstrates the scope-guard API over a live imgui context.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the imgui platform and
// renderer, and builds a small trainer-style UI. Sections come from the
// sugar package; the widgets inside them come straight from the binding.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/sugar"
	"github.com/go-theft-auto/sugar/backend/imguibackend"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "sugar example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appState holds the widget values the UI edits.
type appState struct {
	trainerOpen bool
	showAbout   bool

	vehicles []string
	vehicle  int

	missions []mission
	selected int

	engine, brakes float32
	wanted         float32
	godMode        bool
	clearCol       [3]float32
}

type mission struct {
	name   string
	giver  string
	reward string
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// The platform owns the imgui context, so it comes first.
	platform := imguibackend.NewPlatform(window)
	defer platform.Destroy()

	renderer, err := imguibackend.NewRenderer()
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	backend := imguibackend.New()
	ui := sugar.New(backend)

	state := &appState{
		trainerOpen: true,
		vehicles:    []string{"Banshee", "Infernus", "Cheetah", "Sandking"},
		missions: []mission{
			{"In the Beginning", "Sweet", "$0"},
			{"Drive-Thru", "Sweet", "$200"},
			{"Wrong Side of the Tracks", "Big Smoke", "$500"},
		},
		wanted:   1,
		clearCol: [3]float32{0.12, 0.12, 0.14},
	}

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		platform.NewFrame()

		drawUI(ui, backend, state)

		gl.ClearColor(state.clearCol[0], state.clearCol[1], state.clearCol[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Render(platform.DisplaySize(), platform.FramebufferSize())

		window.SwapBuffers()
	}

	return nil
}

// drawUI builds one frame of the interface.
func drawUI(ui *sugar.UI, backend *imguibackend.Backend, state *appState) {
	ui.MainMenuBar()(func() {
		ui.Menu("View")(func() {
			if imgui.MenuItem("Trainer") {
				state.trainerOpen = !state.trainerOpen
			}
		})
		ui.Menu("Help")(func() {
			if imgui.MenuItem("About") {
				state.showAbout = true
			}
		})
	})

	// OpenPopup must run in the same ID scope that draws the modal, so the
	// menu click only sets a flag.
	if state.showAbout {
		backend.OpenPopup("About")
		state.showAbout = false
	}
	ui.PopupModal("About")(func() {
		imgui.Text("Scope-guard wrappers for imgui begin/end pairs.")
		imgui.Separator()
		if imgui.Button("Close") {
			imgui.CloseCurrentPopup()
		}
	})

	if !state.trainerOpen {
		return
	}

	ui.Window("Trainer", sugar.Open(&state.trainerOpen))(func() {
		ui.TabBar("sections")(func() {
			ui.TabItem("Vehicles")(func() {
				drawVehicles(ui, state)
			})
			ui.TabItem("Missions")(func() {
				drawMissions(ui, state)
			})
			ui.TabItem("Settings")(func() {
				drawSettings(ui, state)
			})
		})
	})
}

func drawVehicles(ui *sugar.UI, state *appState) {
	ui.Combo("Spawn", state.vehicles[state.vehicle])(func() {
		for i, name := range state.vehicles {
			if imgui.SelectableV(name, i == state.vehicle, 0, imgui.Vec2{}) {
				state.vehicle = i
			}
		}
	})

	if imgui.Button("Spawn it") {
		fmt.Println("spawning", state.vehicles[state.vehicle])
	}
	if imgui.IsItemHovered() {
		ui.Tooltip()(func() {
			imgui.Text("Drops the vehicle in front of the player.")
		})
	}

	imgui.Separator()
	ui.TreeNode("Tuning")(func() {
		// Widening every slider beats repeating the width per item.
		defer ui.SetItemWidth(180).End()
		imgui.SliderFloat("Engine", &state.engine, 0, 5)
		imgui.SliderFloat("Brakes", &state.brakes, 0, 5)
	})
}

func drawMissions(ui *sugar.UI, state *appState) {
	ui.Table("missions", 3, sugar.WithTableFlags(sugar.TableFlagsBorders|sugar.TableFlagsRowBg))(func() {
		imgui.TableSetupColumn("Mission")
		imgui.TableSetupColumn("Giver")
		imgui.TableSetupColumn("Reward")
		imgui.TableHeadersRow()

		for i, m := range state.missions {
			ui.IDInt(i)(func() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				if imgui.SelectableV(m.name, i == state.selected, 0, imgui.Vec2{}) {
					state.selected = i
				}
				imgui.TableNextColumn()
				imgui.Text(m.giver)
				imgui.TableNextColumn()
				imgui.Text(m.reward)
			})
		}
	})

	ui.PopupContextWindow()(func() {
		if imgui.MenuItem("Replay selected") {
			fmt.Println("replaying", state.missions[state.selected].name)
		}
	})
}

func drawSettings(ui *sugar.UI, state *appState) {
	imgui.Checkbox("God mode", &state.godMode)

	ui.StyleColor(sugar.StyleColorText, sugar.Vec4{X: 1, Y: 0.8, Z: 0.2, W: 1})(func() {
		imgui.Text("Wanted level")
	})
	imgui.SliderFloat("##wanted", &state.wanted, 0, 6)

	imgui.Separator()
	imgui.ColorEdit3("Background", &state.clearCol)
}
