package main

import "auditdesk/cmd"

func main() {
	cmd.Execute()
}
