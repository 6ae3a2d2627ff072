package audio

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig re-reads the preset file whenever it changes and sends
// the parsed result on configs. Parse failures go to errs and the
// previous config stays in effect.
func WatchConfig(path string, configs chan<- *Config, errs chan<- error, done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("can't create watcher: %w", err)
	}
	go func() {
	loop:
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					break loop
				}
				// editors tend to rename into place rather than write
				if event.Op&(fsnotify.Write|fsnotify.Rename) == 0 {
					continue loop
				}
				c, err := ReadConfig(path)
				if err != nil {
					select {
					case errs <- err:
					case <-done:
						break loop
					}
					continue loop
				}
				select {
				case configs <- c:
				case <-done:
					break loop
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					break loop
				}
				select {
				case errs <- err:
				case <-done:
					break loop
				}
			case <-done:
				break loop
			}
		}
		// ignore close error
		watcher.Close()
	}()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("can't watch %s: %w", path, err)
	}
	return nil
}
