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

package location

import (
	"context"
	"errors"
	"sync"
)

var errNotCached = errors.New("not cached")

type providerMock struct {
	mu            sync.Mutex
	handler       Handler
	authorization Authorization
	disabled      bool
	running       bool
	starts        int
	stops         int
	authRequests  int
}

func newProviderMock(authorization Authorization) *providerMock {
	return &providerMock{authorization: authorization}
}

func (p *providerMock) SetHandler(handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = handler
}

func (p *providerMock) Authorization() Authorization {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.authorization
}

func (p *providerMock) RequestAuthorization() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.authRequests++
}

func (p *providerMock) ServicesEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.disabled
}

func (p *providerMock) StartUpdates() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running = true
	p.starts++
}

func (p *providerMock) StopUpdates() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running = false
	p.stops++
}

func (p *providerMock) isRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *providerMock) startCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.starts
}

func (p *providerMock) emitFix(latitude, longitude, accuracy float64) {
	p.handler.HandleFix(Fix{Latitude: latitude, Longitude: longitude, HorizontalAccuracy: accuracy})
}

func (p *providerMock) emitError(err error) {
	p.handler.HandleError(err)
}

func (p *providerMock) changeAuthorization(status Authorization) {
	p.mu.Lock()
	p.authorization = status
	handler := p.handler
	p.mu.Unlock()

	handler.HandleAuthorization(status)
}

type cacheMock struct {
	mu              sync.Mutex
	coordinate      *CachedCoordinate
	address         *AddressDetail
	coordinateSaves int
	addressSaves    int
}

func newCacheMock() *cacheMock {
	return &cacheMock{}
}

func newCacheMockWith(latitude, longitude string) *cacheMock {
	return &cacheMock{coordinate: &CachedCoordinate{Latitude: latitude, Longitude: longitude}}
}

func (c *cacheMock) SaveCoordinate(coordinate CachedCoordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coordinate = &coordinate
	c.coordinateSaves++
	return nil
}

func (c *cacheMock) Coordinate() (CachedCoordinate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coordinate == nil {
		return CachedCoordinate{}, errNotCached
	}
	return *c.coordinate, nil
}

func (c *cacheMock) SaveAddress(detail AddressDetail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.address = &detail
	c.addressSaves++
	return nil
}

func (c *cacheMock) Address() (AddressDetail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.address == nil {
		return AddressDetail{}, errNotCached
	}
	return *c.address, nil
}

func (c *cacheMock) saves() (coordinate, address int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coordinateSaves, c.addressSaves
}

type geocoderMock struct {
	mu        sync.Mutex
	placemark Placemark
	err       error
	calls     int
}

func (g *geocoderMock) Reverse(_ context.Context, _ Coordinate) (Placemark, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return g.placemark, g.err
}

func (g *geocoderMock) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type publisherMock struct {
	mu     sync.Mutex
	events map[string][]interface{}
}

func newPublisherMock() *publisherMock {
	return &publisherMock{events: make(map[string][]interface{})}
}

func (p *publisherMock) Publish(topic string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[topic] = append(p.events[topic], data)
}

func (p *publisherMock) resolved() []ResolvedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var events []ResolvedEvent
	for _, e := range p.events[AppTopicLocationResolved] {
		events = append(events, e.(ResolvedEvent))
	}
	return events
}
