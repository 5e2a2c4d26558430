package mqtt

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	mqttIface "github.com/openheat/heatmon/internal/interface/mqtt"
)

type Config struct {
	BrokerURL string // e.g. "tcp://mqtt:1883"
	ClientID  string
	Username  string
	Password  string
	TLS       bool
}

func LoadConfigFromEnv() (Config, error) {
	var cfg Config

	cfg.BrokerURL = os.Getenv("MQTT_URL")
	if cfg.BrokerURL == "" {
		return cfg, errors.New("missing MQTT_URL")
	}
	cfg.ClientID = os.Getenv("MQTT_CLIENT_ID")
	if cfg.ClientID == "" {
		// Stable prefix, unique suffix: brokers drop duplicate client ids.
		cfg.ClientID = "heatmon-" + uuid.NewString()[:8]
	}
	cfg.Username = os.Getenv("MQTT_USERNAME")
	cfg.Password = os.Getenv("MQTT_PASSWORD")

	if v := os.Getenv("MQTT_TLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid MQTT_TLS %q: %w", v, err)
		}
		cfg.TLS = b
	}

	return cfg, nil
}

type client struct {
	c mqtt.Client
}

// NewClient connects to the broker described by the environment.
func NewClient() (mqttIface.Client, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

func NewClientWithConfig(cfg Config) (mqttIface.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetKeepAlive(30 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetPingTimeout(3 * time.Second).
		SetOrderMatters(false)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.TLS {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	c := mqtt.NewClient(opts)
	t := c.Connect()
	if ok := t.WaitTimeout(10 * time.Second); !ok || t.Error() != nil {
		if t.Error() != nil {
			return nil, t.Error()
		}
		return nil, errors.New("mqtt connect timed out")
	}
	return &client{c: c}, nil
}

func (c *client) Publish(msg mqttIface.Message) error {
	t := c.c.Publish(msg.Topic, msg.QoS, msg.Retain, msg.Payload)
	t.Wait()
	return t.Error()
}

func (c *client) Subscribe(sub mqttIface.Subscription) error {
	t := c.c.Subscribe(sub.Topic, sub.QoS, sub.Callback)
	t.Wait()
	return t.Error()
}

func (c *client) Close(quiesce uint) {
	if c.c.IsConnectionOpen() {
		c.c.Disconnect(quiesce)
	}
}
