//go:build !windows

package processes

import "os/exec"

func configureCmd(_ *exec.Cmd, _ StartOptions) {}

func killCommand(name string) (string, []string) {
	return "pkill", []string{"-x", name}
}
