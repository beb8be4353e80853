// SPDX-License-Identifier: Apache-2.0

package systemd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"
)

// IsServiceActive reports whether the specified service is in the "active"
// state. It is equivalent to running "systemctl is-active <service>".
// The service name can be provided with or without the .service suffix.
func IsServiceActive(parent context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(parent, 10*time.Second)
	defer cancel()

	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return false, fmt.Errorf("connect to systemd: %w", err)
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	units, err := conn.ListUnitsByNamesContext(ctx, []string{serviceName})
	if err != nil {
		return false, fmt.Errorf("query service %s: %w", serviceName, err)
	}

	for _, unit := range units {
		if unit.Name == serviceName {
			return unit.ActiveState == "active", nil
		}
	}

	return false, nil
}

// StartService starts the specified service.
// This function waits until the service is fully started.
// It is equivalent to running "systemctl start <service>".
// The service name can be provided with or without the .service suffix.
func StartService(parent context.Context, name string) error {
	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return fmt.Errorf("connect to systemd: %w", err)
	}
	defer conn.Close()

	serviceName := ensureServiceSuffix(name)

	// Make this call synchronous and wait until the unit is started.
	jobChan := make(chan string, 1) // buffered channel to avoid goroutine leaks

	// The second parameter 'replace' means to replace any existing job for the unit.
	_, err = conn.StartUnitContext(ctx, serviceName, "replace", jobChan)
	if err != nil {
		return fmt.Errorf("start service %s: %w", serviceName, err)
	}

	select {
	case result := <-jobChan:
		if result != "done" {
			return fmt.Errorf("service %s start failed: %s", serviceName, result)
		}
		return nil

	case <-ctx.Done():
		return fmt.Errorf("timeout waiting for service %s to start: %w", serviceName, ctx.Err())
	}
}

// EnsureServiceActive starts the service unless it is already active.
// Starting an already running unit is a no-op at the systemd level, but the
// explicit check avoids queuing a redundant job on every invocation.
func EnsureServiceActive(ctx context.Context, name string) error {
	active, err := IsServiceActive(ctx, name)
	if err != nil {
		return err
	}
	if active {
		return nil
	}
	return StartService(ctx, name)
}

func ensureServiceSuffix(name string) string {
	if strings.HasSuffix(name, ".service") {
		return name
	}
	return name + ".service"
}
