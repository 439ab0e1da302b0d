// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"vgaemu/machine"
)

var ctrlKeys = map[ebiten.Key]byte{
	ebiten.KeyL: machine.KEY_CTRL_L,
	ebiten.KeyP: machine.KEY_CTRL_P,
	ebiten.KeyT: machine.KEY_CTRL_T,
	ebiten.KeyU: machine.KEY_CTRL_U,
}

type Game struct {
	inputs <-chan machine.Input
}

func (g *Game) Update() error {
	var keys []byte
	for _, r := range ebiten.AppendInputChars(nil) {
		if b, ok := machine.KeyByte(r); ok {
			keys = append(keys, b)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyF12:
			return Terminated
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			keys = append(keys, machine.KEY_CR)
		case ebiten.KeyBackspace:
			keys = append(keys, machine.KEY_BS)
		default:
			if b, ok := ctrlKeys[k]; ok && ctrl {
				keys = append(keys, b)
			}
		}
	}
	if len(keys) > 0 {
		kernel.Handle(machine.Input{Kind: machine.KeyInput, Data: keys})
	}

	for {
		select {
		case in := <-g.inputs:
			kernel.Handle(in)
		default:
			return nil
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	framebuffer.refresh(bus, crtc, blink.Phase())
	screen.DrawImage(framebuffer.framebuffer, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return machine.ScreenWidth, machine.ScreenHeight
}

func runWindow(inputs <-chan machine.Input) error {
	framebuffer.initialize()

	ebiten.SetWindowSize(machine.ScreenWidth*3/2, machine.ScreenHeight*3/2)
	ebiten.SetWindowTitle("LeonOS VGA console")

	g := Game{inputs: inputs}
	if err := ebiten.RunGame(&g); err != Terminated && err != nil {
		return err
	}
	return nil
}
