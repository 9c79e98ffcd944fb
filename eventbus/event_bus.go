/*
 * Copyright (C) 2024 The "MysteriumNetwork/node" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package eventbus

import (
	"sync"

	asaskevichEventBus "github.com/mysteriumnetwork/EventBus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventBus allows subscribing and publishing data by topic
type EventBus interface {
	Publisher
	Subscriber
	WaitAsync()
}

// Publisher publishes events
type Publisher interface {
	Publish(topic string, data interface{})
}

// Subscriber subscribes to events.
type Subscriber interface {
	Subscribe(topic string, fn interface{}) error
	SubscribeAsync(topic string, fn interface{}) error
	SubscribeOnce(topic string, fn interface{}) error
	Unsubscribe(topic string, fn interface{}) error
}

type simplifiedEventBus struct {
	bus asaskevichEventBus.Bus
}

// New returns implementation of EventBus.
func New() *simplifiedEventBus {
	return &simplifiedEventBus{
		bus: asaskevichEventBus.New(),
	}
}

func (b *simplifiedEventBus) Subscribe(topic string, fn interface{}) error {
	return b.bus.Subscribe(topic, fn)
}

func (b *simplifiedEventBus) SubscribeAsync(topic string, fn interface{}) error {
	return b.bus.SubscribeAsync(topic, fn, false)
}

func (b *simplifiedEventBus) SubscribeOnce(topic string, fn interface{}) error {
	return b.bus.SubscribeOnce(topic, fn)
}

func (b *simplifiedEventBus) Unsubscribe(topic string, fn interface{}) error {
	return b.bus.Unsubscribe(topic, fn)
}

func (b *simplifiedEventBus) Publish(topic string, data interface{}) {
	log.WithLevel(levelFor(topic)).Msgf("Published topic=%q event=%+v", topic, data)
	b.bus.Publish(topic, data)
}

// WaitAsync blocks until all async subscribers have finished.
func (b *simplifiedEventBus) WaitAsync() {
	b.bus.WaitAsync()
}

var (
	logLevelsMu      sync.RWMutex
	logLevelsByTopic = map[string]zerolog.Level{}
)

// SetTopicLogLevel overrides the level used to log publishes of a topic.
func SetTopicLogLevel(topic string, level zerolog.Level) {
	logLevelsMu.Lock()
	defer logLevelsMu.Unlock()
	logLevelsByTopic[topic] = level
}

func levelFor(topic string) zerolog.Level {
	logLevelsMu.RLock()
	defer logLevelsMu.RUnlock()

	if level, exist := logLevelsByTopic[topic]; exist {
		return level
	}
	return zerolog.DebugLevel
}
