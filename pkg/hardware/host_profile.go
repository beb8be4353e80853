// SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/jaypipes/ghw"
	"github.com/zcalusic/sysinfo"
)

var once sync.Once

func suppressGHWWarnings() {
	once.Do(func() {
		os.Setenv("GHW_DISABLE_WARNINGS", "1")
	})
}

// HostProfile provides an abstraction over system information gathering.
// This interface allows for easier testing and separation of concerns.
type HostProfile interface {
	// OS information
	GetOSVendor() string
	GetOSVersion() string

	// Memory information (in GB)
	GetTotalMemoryGB() uint64

	// Storage information (in GB)
	GetTotalStorageGB() uint64

	String() string
}

// cachedBlockInfo holds pre-computed storage values from a single ghw.Block() call
type cachedBlockInfo struct {
	totalGB uint64
}

// DefaultHostProfile implements HostProfile using both sysinfo and ghw libraries
type DefaultHostProfile struct {
	sysInfo   sysinfo.SysInfo
	blockInfo *cachedBlockInfo
	blockOnce sync.Once
}

// GetHostProfile creates a new DefaultHostProfile by gathering system information
func GetHostProfile() HostProfile {
	// Suppress warnings before any ghw operations
	suppressGHWWarnings()

	var si sysinfo.SysInfo
	si.GetSysInfo()

	return &DefaultHostProfile{
		sysInfo: si,
	}
}

// getBlockInfo returns cached block storage info, fetching it once if needed
func (d *DefaultHostProfile) getBlockInfo() *cachedBlockInfo {
	d.blockOnce.Do(func() {
		block, err := ghw.Block()
		if err != nil {
			log.Printf("Error getting block info from ghw: %v", err)
			d.blockInfo = &cachedBlockInfo{}
			return
		}

		d.blockInfo = &cachedBlockInfo{
			totalGB: block.TotalPhysicalBytes / (1024 * 1024 * 1024),
		}
	})
	return d.blockInfo
}

// GetOSVendor returns the OS vendor/distribution name
func (d *DefaultHostProfile) GetOSVendor() string {
	return d.sysInfo.OS.Vendor
}

// GetOSVersion returns the OS version
func (d *DefaultHostProfile) GetOSVersion() string {
	return d.sysInfo.OS.Version
}

// GetTotalMemoryGB returns total system memory in GB
func (d *DefaultHostProfile) GetTotalMemoryGB() uint64 {
	// sysinfo reports memory size in MB
	return uint64(d.sysInfo.Memory.Size) / 1024
}

// GetTotalStorageGB returns total physical storage in GB
func (d *DefaultHostProfile) GetTotalStorageGB() uint64 {
	return d.getBlockInfo().totalGB
}

func (d *DefaultHostProfile) String() string {
	return fmt.Sprintf("os=%s/%s memory=%dGB storage=%dGB",
		d.GetOSVendor(), d.GetOSVersion(), d.GetTotalMemoryGB(), d.GetTotalStorageGB())
}
