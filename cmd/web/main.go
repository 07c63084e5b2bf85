package main

import "scholar_backend/internal/app"

func main() {
	app.Run()
}
