package main

import "pet-tracker-backend/cmd"

func main() {
	cmd.Run()
}
