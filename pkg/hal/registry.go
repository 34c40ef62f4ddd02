package hal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDriver is returned by Open for an unregistered driver.
var ErrUnknownDriver = errors.New("unknown audio driver")

// OpenFunc opens the module with the given id ("primary", "a2dp", ...).
type OpenFunc func(moduleID string) (Device, error)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]OpenFunc)
)

// Register makes a driver available by name. It panics if open is nil or
// the name is taken.
func Register(name string, open OpenFunc) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if open == nil {
		panic("hal: Register open func is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("hal: Register called twice for driver " + name)
	}
	drivers[name] = open
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open opens module moduleID with the named driver and runs InitCheck.
func Open(driver, moduleID string) (Device, error) {
	driversMu.RLock()
	open, ok := drivers[driver]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	dev, err := open(moduleID)
	if err != nil {
		return nil, fmt.Errorf("opening %s module %q: %w", driver, moduleID, err)
	}
	if err := dev.InitCheck(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("init check of %s module %q: %w", driver, moduleID, err)
	}
	return dev, nil
}
