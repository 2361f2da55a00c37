package main

import "matchmate_backend/internal/app"

func main() {
	app.Run()
}
