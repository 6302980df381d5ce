//go:build windows
// +build windows

package platformservice

import (
	"os/exec"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procGlobalMemoryStatusEx = modkernel32.NewProc("GlobalMemoryStatusEx")
	procGetTickCount64       = modkernel32.NewProc("GetTickCount64")
)

type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

func detectOSRelease() string {
	out, err := exec.Command("cmd", "/C", "ver").Output()
	if err == nil {
		return strings.TrimSpace(string(out))
	}
	return ""
}

func detectUptime() time.Duration {
	ret, _, _ := procGetTickCount64.Call()
	return time.Duration(ret) * time.Millisecond
}

func detectTotalRAM() uint64 {
	var m memoryStatusEx
	m.dwLength = uint32(unsafe.Sizeof(m))
	ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&m)))
	if ret == 0 {
		return 0
	}
	return m.ullTotalPhys
}

func detectDefaultShell() string {
	return "powershell"
}
