package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"citypulse/config"
	"citypulse/internal/domain/citizen"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// Publisher emits committed schedule transitions to an MQTT broker, one topic
// per citizen under the configured prefix.
type Publisher struct {
	client pahomqtt.Client
	prefix string
	qos    byte
}

type transitionMessage struct {
	Citizen uint32    `json:"citizen"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	At      time.Time `json:"at"`
}

// Connect dials the configured broker. Reconnection is left to paho's
// auto-reconnect; publishes during an outage fail quietly.
func Connect(cfg config.EventsConfig) (*Publisher, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout)

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect: timeout after %v", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	return &Publisher{client: client, prefix: cfg.TopicPrefix, qos: cfg.QoS}, nil
}

func (p *Publisher) PublishTransition(ctx context.Context, id citizen.ID, from, to citizen.ResidentState, at time.Time) error {
	payload, err := json.Marshal(transitionMessage{
		Citizen: uint32(id),
		From:    from.String(),
		To:      to.String(),
		At:      at,
	})
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("%s/citizens/%d/transitions", p.prefix, id)
	token := p.client.Publish(topic, p.qos, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish: timeout after %v", publishTimeout)
	}
	return token.Error()
}

// Close disconnects from the broker, allowing in-flight publishes to finish.
func (p *Publisher) Close() {
	p.client.Disconnect(uint(publishTimeout.Milliseconds()))
}
