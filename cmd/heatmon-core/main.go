package main

import "log"

func main() {
	handler, err := InitMainHandler()
	if err != nil {
		log.Fatal(err)
	}
	defer handler.MQTT.Close(250)

	if err := handler.Handle(); err != nil {
		log.Fatal(err)
	}
}
