//go:build windows

package processes

import (
	"os/exec"
	"syscall"
)

func configureCmd(cmd *exec.Cmd, opts StartOptions) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    opts.HideWindow,
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}

// killCommand force-terminates every process with the given image name.
func killCommand(name string) (string, []string) {
	return "taskkill", []string{"/F", "/IM", name}
}
