// Copyright 2021-2024 Sebastian Lederer. See the file LICENSE.md for details
package machine

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Feed tails a file into the console: whatever is appended gets printed.
type Feed struct {
	path   string
	offset int64
	w      *fsnotify.Watcher
	out    chan<- Input
}

// OpenFeed prints the current content of path and then follows it.
func OpenFeed(path string, out chan<- Input) (*Feed, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	f := &Feed{path: path, w: w, out: out}
	if err := f.readNew(); err != nil {
		w.Close()
		return nil, err
	}
	go f.loop()
	return f, nil
}

func (f *Feed) loop() {
	for {
		select {
		case ev, ok := <-f.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := f.readNew(); err != nil {
					log.Printf("feed: %v", err)
				}
			}
		case err, ok := <-f.w.Errors:
			if !ok {
				return
			}
			log.Printf("feed %s: %v", f.path, err)
		}
	}
}

// readNew sends everything past the last offset. A file that shrank was
// truncated and is read from the start again.
func (f *Feed) readNew() error {
	fh, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return err
	}
	if st.Size() < f.offset {
		f.offset = 0
	}
	if st.Size() == f.offset {
		return nil
	}

	section := io.NewSectionReader(fh, f.offset, st.Size()-f.offset)
	text, err := io.ReadAll(section)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.path, err)
	}
	f.offset = st.Size()
	data := ToCodePage(text)
	if len(data) > 0 {
		f.out <- Input{Kind: TextOutput, Data: data}
	}
	return nil
}

func (f *Feed) Close() error {
	return f.w.Close()
}
