package main

import "github.com/Chittaranjans/Recruiter-board/cmd"

func main() {
	cmd.Execute()
}
