package main

import (
	"encoding/json"
	"fmt"

	mq "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	mqttClient "github.com/openheat/heatmon/internal/client/mqtt"
	"github.com/openheat/heatmon/internal/ha"
	mqttIface "github.com/openheat/heatmon/internal/interface/mqtt"
)

type MainHandler struct {
	Log  *zap.Logger
	MQTT mqttIface.Client
}

func NewMainHandler(logger *zap.Logger, mqtt mqttIface.Client) *MainHandler {
	return &MainHandler{Log: logger, MQTT: mqtt}
}

// Handle waits for device announcements and registers their sensors with
// Home Assistant. Meta is retained by the adapters, so restarting this
// service replays every known device.
func (h *MainHandler) Handle() error {
	sub := mqttIface.Subscription{
		Topic: "heatmon/+/meta",
		QoS:   1,
		Callback: func(_ mq.Client, m mq.Message) {
			var meta ha.Meta
			if err := json.Unmarshal(m.Payload(), &meta); err != nil {
				h.Log.Warn("bad meta payload", zap.String("topic", m.Topic()), zap.Error(err))
				return
			}
			h.publishDiscovery(meta)
		},
	}
	if err := h.MQTT.Subscribe(sub); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	h.Log.Info("heatmon-core up, waiting for meta")
	select {}
}

func (h *MainHandler) publishDiscovery(meta ha.Meta) {
	unique := ha.Sanitize(meta.DeviceID)
	device := &ha.Device{
		Identifiers:  []string{meta.DeviceID},
		Manufacturer: "heatmon",
		Model:        meta.Model,
		Name:         meta.DeviceID,
	}

	for _, s := range meta.Sensors {
		object := ha.Sanitize(s.Component + "_" + s.Field)
		cfg := &ha.SensorConfig{
			Name:       fmt.Sprintf("%s %s %s", meta.DeviceID, s.Component, s.Field),
			UniqueID:   unique + "_" + object,
			StateTopic: ha.TopicState(meta.DeviceID),
			ValueTpl:   ha.StateValueTemplate(s.Component, s.Field),
			UnitOfMeas: s.Unit,
			Device:     device,
		}

		payload, err := cfg.Marshal()
		if err != nil {
			h.Log.Warn("marshal discovery config", zap.String("object", object), zap.Error(err))
			continue
		}
		err = h.MQTT.Publish(mqttIface.Message{
			Topic:   ha.TopicSensorConfig(unique, object),
			Payload: payload,
			QoS:     1,
			Retain:  true,
		})
		if err != nil {
			h.Log.Warn("publish discovery config", zap.String("object", object), zap.Error(err))
		}
	}

	h.Log.Info("discovery published",
		zap.String("device", meta.DeviceID),
		zap.Int("sensors", len(meta.Sensors)))
}

// ---- wire providers ----

func ProvideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func ProvideMqttClient() (mqttIface.Client, error) {
	return mqttClient.NewClient()
}
