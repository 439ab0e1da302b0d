// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package main

import (
	"errors"
	"flag"
	"log"

	"vgaemu/machine"
	"vgaemu/vga"
)

var bus *machine.Bus
var crtc *machine.CRTC
var blink *machine.BlinkTimer
var kernel *machine.Kernel
var framebuffer Framebuffer

var Terminated = errors.New("terminated")

func main() {
	displayPtr := flag.String("display", "window", "where the screen goes: window, term or dump")
	tracePtr := flag.Bool("t", false, "trace port traffic")
	feedPtr := flag.String("feed", "", "file to tail into the console")
	execPtr := flag.String("exec", "", "program to run with its output on the console")
	versionPtr := flag.String("kernel-version", machine.KernelVersion, "version shown in the boot banner")
	flag.Parse()

	log.SetFlags(0)

	bus = machine.NewBus(*tracePtr)
	crtc = machine.NewCRTC(*tracePtr)
	bus.AttachIO(crtc, vga.CommandPort, 2)
	blink = machine.NewBlinkTimer()

	kernel = machine.NewKernel(bus)
	kernel.Version = *versionPtr
	if err := kernel.Boot(); err != nil {
		log.Fatal(err)
	}

	inputs := make(chan machine.Input, 64)

	if *execPtr != "" {
		ptmx, err := machine.StartProgram(*execPtr, inputs)
		if err != nil {
			log.Fatal(err)
		}
		defer ptmx.Close()
		kernel.SetProgram(ptmx)
	}

	if *feedPtr != "" {
		feed, err := machine.OpenFeed(*feedPtr, inputs)
		if err != nil {
			log.Fatal(err)
		}
		defer feed.Close()
	}

	var err error
	switch *displayPtr {
	case "window":
		err = runWindow(inputs)
	case "term":
		err = runTerm(inputs)
	case "dump":
		err = runDump(inputs, *execPtr != "")
	default:
		log.Fatalf("unknown display %q", *displayPtr)
	}
	if err != nil {
		log.Print(err)
	}
}
