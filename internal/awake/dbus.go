//go:build linux

package awake

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	dbusScreenSaverDest      = "org.freedesktop.ScreenSaver"
	dbusScreenSaverPath      = "/org/freedesktop/ScreenSaver"
	dbusScreenSaverInterface = "org.freedesktop.ScreenSaver"

	appName = "iv"
)

// dbusInhibitor inhibits the screensaver through the freedesktop D-Bus API.
type dbusInhibitor struct {
	mu     sync.Mutex
	obj    dbus.BusObject
	cookie uint32
	held   bool
}

// New creates an Inhibitor talking to the session screensaver.
// Returns a no-op inhibitor if D-Bus is unavailable.
func New() Inhibitor {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Nop{}
	}
	return &dbusInhibitor{obj: conn.Object(dbusScreenSaverDest, dbusScreenSaverPath)}
}

func (d *dbusInhibitor) Inhibit(reason string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.held {
		return nil
	}

	// Inhibit(application_name, reason_for_inhibit) -> cookie
	call := d.obj.Call(dbusScreenSaverInterface+".Inhibit", 0, appName, reason)
	if call.Err != nil {
		return call.Err
	}
	if err := call.Store(&d.cookie); err != nil {
		return err
	}
	d.held = true
	return nil
}

func (d *dbusInhibitor) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.held {
		return nil
	}
	d.held = false
	return d.obj.Call(dbusScreenSaverInterface+".UnInhibit", 0, d.cookie).Err
}
