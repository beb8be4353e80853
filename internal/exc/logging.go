// SPDX-License-Identifier: Apache-2.0

package exc

// logFields defines default log field key names
var logFields = struct {
	execCmd string
	execDir string
	execPid string
}{
	execCmd: "exec_cmd",
	execDir: "exec_dir",
	execPid: "exec_pid",
}
