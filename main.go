package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"Terrace/internal/config"
	"Terrace/terrain"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

type Viewer struct {
	state        ViewState
	introScreen  *IntroScreen
	paramsScreen *ParamsScreen

	cfg    *config.Config
	gen    *terrain.Generator
	regen  *terrain.Regenerator
	cancel context.CancelFunc

	// Params of the latest request
	params terrain.Params

	camera   *Camera
	renderer *MeshRenderer
	ui       *UI
	help     *HelpPanel

	framed    bool
	showDebug bool
}

func NewViewer(cfg *config.Config, gen *terrain.Generator) *Viewer {
	ctx, cancel := context.WithCancel(context.Background())

	v := &Viewer{
		state:       StateIntro,
		introScreen: NewIntroScreen(),
		cfg:         cfg,
		gen:         gen,
		regen:       terrain.NewRegenerator(gen),
		cancel:      cancel,
		params:      cfg.Params,
		camera:      NewCamera(),
		renderer:    NewMeshRenderer(),
		ui:          NewUI(),
		help:        NewHelpPanel(),
	}
	// Pin the seed so parameter edits keep the same landscape
	if v.params.Seed == nil {
		v.params = v.params.WithSeed(gen.NextSeed())
	}

	v.regen.Start(ctx)
	v.regen.Request(v.params)
	log.Println("Viewer initialized, generating first mesh")
	return v
}

func (v *Viewer) request(p terrain.Params) {
	v.params = p
	v.regen.Request(p)
}

// pollRegen picks up finished generations.
func (v *Viewer) pollRegen() {
	select {
	case <-v.regen.Updates():
	default:
		return
	}

	if err := v.regen.Err(); err != nil {
		log.Printf("Warning: Generation failed: %v", err)
		v.ui.AddError("Generation failed: " + err.Error())
		return
	}

	mesh, version := v.regen.Current()
	if !v.renderer.SetMesh(mesh, version) {
		return
	}
	if !v.framed {
		v.camera.Frame(mesh.Width, mesh.Depth, mesh.Params.MeshHeight)
		v.framed = true
	}
	v.ui.MeshSwapped()
	v.ui.AddNotification(fmt.Sprintf("Generated %dx%d in %.0f ms", mesh.Width, mesh.Depth, float64(mesh.Elapsed.Milliseconds())))
}

func (v *Viewer) Update() error {
	v.pollRegen()
	v.ui.Update(v.regen.Busy())

	switch v.state {
	case StateIntro:
		mesh, _ := v.regen.Current()
		v.state = v.introScreen.Update(mesh != nil)

	case StateParams:
		newState, apply := v.paramsScreen.Update()
		if apply {
			v.request(v.paramsScreen.Params())
			v.framed = false
			v.ui.AddNotification("Applying parameters")
		}
		v.state = newState

	case StateViewing:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			if v.help.Active {
				v.help.Toggle()
			} else {
				v.cancel()
				return ebiten.Termination
			}
		}
		v.handleKeys()
		v.camera.Update()
		v.help.Update()
	}
	return nil
}

func (v *Viewer) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p := v.params.WithSeed(v.gen.NextSeed())
		v.request(p)
		v.ui.AddNotification(fmt.Sprintf("Reseeded: %d", *p.Seed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		p := v.params
		p.Jitter = !p.Jitter
		v.request(p)
		v.ui.AddNotification("Jitter " + onOff(p.Jitter))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p := v.params
		p.Normals = cycle(normalModes, p.Normals, 1)
		v.request(p)
		v.ui.AddNotification("Normals: " + string(p.Normals))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		v.renderer.ShowWater = !v.renderer.ShowWater
		v.ui.AddNotification("Water " + onOff(v.renderer.ShowWater))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.paramsScreen = NewParamsScreen(v.params, v.gen.MaxVertexCount)
		v.state = StateParams
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.help.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		v.showDebug = !v.showDebug
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.state == StateIntro {
		mesh, _ := v.regen.Current()
		v.introScreen.Draw(screen, mesh != nil)
		return
	}

	v.renderer.Draw(screen, v.camera)

	mesh, _ := v.regen.Current()
	v.ui.Draw(screen, mesh, v.params, v.cfg.BandsFor(v.params.WaterHeight), v.regen.Busy())

	if v.state == StateParams {
		v.paramsScreen.Draw(screen)
	}
	v.help.Draw(screen)

	if v.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f\nYaw: %0.2f\nPitch: %0.2f\nDist: %0.1f\nFaces: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), v.camera.Yaw, v.camera.Pitch, v.camera.Distance, len(v.renderer.faces)), ScreenWidth-160, 10)
	}
}

func (v *Viewer) Layout(w, h int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// optionalSeed is a flag value that remembers whether it was set, so 0 is
// a seed like any other.
type optionalSeed struct {
	v *int64
}

func (s *optionalSeed) String() string {
	if s.v == nil {
		return ""
	}
	return strconv.FormatInt(*s.v, 10)
}

func (s *optionalSeed) Set(v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	s.v = &n
	return nil
}

func main() {
	configPath := flag.String("config", DefaultConfigPath, "config file")
	var seed optionalSeed
	flag.Var(&seed, "seed", "pin the terrain seed (unset draws one)")
	serveHTTP := flag.Bool("serve", false, "run the HTTP API instead of the viewer")
	addr := flag.String("addr", "", "listen address for -serve (overrides config and SERVER_ADDR)")
	exportDir := flag.String("export", "", "write chunk BMPs to this directory and exit")
	chunks := flag.Int("chunks", 2, "chunks per side for -export")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if seed.v != nil {
		cfg.Params = cfg.Params.WithSeed(*seed.v)
	}

	gen := terrain.NewGenerator(rand.NewSource(time.Now().UnixNano()), cfg.Bands)
	gen.Logger = log.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *exportDir != "":
		files, err := exportChunks(ctx, *exportDir, *chunks, cfg, gen)
		if err != nil {
			log.Fatal(err)
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return

	case *serveHTTP:
		if *addr != "" {
			cfg.ServerAddr = *addr
		}
		if err := serve(ctx, cfg, gen); err != nil {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Terrace - Procedural Terrain")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	viewer := NewViewer(cfg, gen)
	if icon := windowIcon(cfg, *viewer.params.Seed); icon != nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	if err := ebiten.RunGame(viewer); err != nil {
		if !errors.Is(err, ebiten.Termination) {
			log.Fatal(err)
		}
	}
}
