package util

import (
	"io"
	"sync"
)

var (
	closeOnExit []io.Closer
	closeMutex  sync.Mutex
)

// RegisterCloser registers an io.Closer to be closed by CloseAll.
func RegisterCloser(c io.Closer) {
	closeMutex.Lock()
	defer closeMutex.Unlock()
	closeOnExit = append(closeOnExit, c)
	log.WithField("count", len(closeOnExit)).Debug("registered_closer")
}

// CloseAll closes every registered io.Closer in reverse order of
// registration and clears the list.
func CloseAll() {
	closeMutex.Lock()
	defer closeMutex.Unlock()

	for i := len(closeOnExit) - 1; i >= 0; i-- {
		if err := closeOnExit[i].Close(); err != nil {
			log.WithError(err).Warn("error closing resource")
		}
	}
	log.WithField("count", len(closeOnExit)).Debug("closed_all")
	closeOnExit = nil
}
