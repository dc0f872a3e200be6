// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"context"
	"fmt"
	"path/filepath"

	"cogentcore.org/colorpicker/base/errors"
	"github.com/fsnotify/fsnotify"
)

// WatchOptions opens the options in the given file, calls the given
// function with them, and then calls it again with the reopened options
// each time that the file is written or replaced, until the context is
// done. A file that fails to open after a change is logged and skipped.
// It watches the directory of the file, so that editors that save by
// renaming a new file over the old one are also seen. It blocks until
// the context is done, and only returns an error if the watch can not
// be set up or the first open fails.
func WatchOptions(ctx context.Context, filename string, fn func(o Options)) error {
	filename = filepath.Clean(filename)
	o, err := OpenOptions(filename)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("picker.WatchOptions: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return fmt.Errorf("picker.WatchOptions: %w", err)
	}
	fn(o)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			o, err := OpenOptions(filename)
			if err != nil {
				errors.Log(err)
				continue
			}
			fn(o)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(fmt.Errorf("picker.WatchOptions: %s: %w", filename, err))
		}
	}
}
