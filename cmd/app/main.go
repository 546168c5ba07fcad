package main

import "reciclame-api/app"

func main() {
	app.Run()
}
