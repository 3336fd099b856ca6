package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/core"
)

var ErrBrokerTimeout = errors.New("mqtt broker connect timeout")

const connectTimeout = 5 * time.Second

// mqttClient is the subset of mqtt.Client the publisher needs
type mqttClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher sends events as JSON to <topic>/<session>/<kind>
type MQTTPublisher struct {
	client mqttClient
	topic  string
}

// NewMQTTPublisher connects to broker and returns a publisher, the connection retries in the background
func NewMQTTPublisher(broker, clientID, topic string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("%s: %w", broker, ErrBrokerTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", broker, err)
	}
	log.Noticef("connected to broker %s", broker)

	return newMQTTPublisher(client, topic), nil
}

func newMQTTPublisher(client mqttClient, topic string) *MQTTPublisher {
	if topic == "" {
		topic = constants.DefaultMQTTTopic
	}
	return &MQTTPublisher{client: client, topic: topic}
}

// Topic returns the topic an event is published on
func (p *MQTTPublisher) Topic(ev Event) string {
	return p.topic + "/" + ev.Session + "/" + ev.Kind
}

// Publish queues ev, delivery errors are logged from a background goroutine
func (p *MQTTPublisher) Publish(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	topic := p.Topic(ev)
	token := p.client.Publish(topic, constants.MQTTQoS, false, data)
	core.Go(func() {
		if token.Wait() && token.Error() != nil {
			log.Errorf("failed to publish to %s: %v", topic, token.Error())
		}
	})
	return nil
}

// Close disconnects after in-flight work drains
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
