//go:build windows

package app

import (
	"os/exec"
	"syscall"
)

func openURL(url string) error {
	cmd := exec.Command("cmd", "/C", "start", "", url)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return cmd.Start()
}
