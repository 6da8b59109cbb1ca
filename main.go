// SPDX-License-Identifier: MPL-2.0

// Command winlaunch exposes the Windows launcher helpers on the command line.
package main

import "github.com/winlaunch/winlaunch/cmd/winlaunch"

func main() {
	cmd.Execute()
}
