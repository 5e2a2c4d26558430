package main

import "log"

func main() {
	handler, err := InitMainHandler()
	if err != nil {
		log.Fatal(err)
	}
	defer handler.Close()

	if err := handler.Handle(); err != nil {
		log.Fatal(err)
	}
}
