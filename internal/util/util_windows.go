//go:build windows

package util

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

var shellProcesses = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wt.exe",
	"conhost.exe",
	"windowsterminal.exe",
	"bash.exe",
}

// IsRunFromGUI reports whether the process was started from Explorer rather than a shell.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return true
	}

	parent := strings.ToLower(parentProcessName())
	slog.Debug("Parent process", "name", parent)

	if slices.Contains(shellProcesses, parent) {
		return false
	}
	return parent == "explorer.exe"
}

// parentProcessName walks one process snapshot, indexing executable names by
// pid, and returns the name of the current process's parent.
func parentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))

	self := uint32(os.Getpid())
	var parentPID uint32
	names := make(map[uint32]string)

	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		names[pe.ProcessID] = windows.UTF16ToString(pe.ExeFile[:])
		if pe.ProcessID == self {
			parentPID = pe.ParentProcessID
		}
	}

	if parentPID == 0 {
		return ""
	}
	return names[parentPID]
}
