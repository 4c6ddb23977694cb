package main

import "fintrack/internal/app/server"

func main() {
	server.Run()
}
