package mqtt

import mqtt "github.com/eclipse/paho.mqtt.golang"

type Message struct {
	Topic   string
	Payload []byte
	QoS     byte
	Retain  bool
}

type Subscription struct {
	Topic    string
	QoS      byte
	Callback mqtt.MessageHandler
}

// Client is the narrow broker surface the adapter needs; it is small on
// purpose so tests can fake it without touching paho tokens.
type Client interface {
	Publish(msg Message) error
	Subscribe(sub Subscription) error
	Close(quiesce uint)
}
