package main

import "Postboard/api"

func main() {
	api.Run()
}
