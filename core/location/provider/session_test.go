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

package provider

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peraking/locator/core/location"
	"github.com/peraking/locator/core/location/locationstore"
	"github.com/peraking/locator/core/storage/boltdb/boltdbtest"
	"github.com/peraking/locator/eventbus"
)

type handlerMock struct {
	fixes          chan location.Fix
	errors         chan error
	authorizations chan location.Authorization
}

func newHandlerMock() *handlerMock {
	return &handlerMock{
		fixes:          make(chan location.Fix, 100),
		errors:         make(chan error, 100),
		authorizations: make(chan location.Authorization, 100),
	}
}

func (h *handlerMock) HandleFix(fix location.Fix) {
	h.fixes <- fix
}

func (h *handlerMock) HandleError(err error) {
	h.errors <- err
}

func (h *handlerMock) HandleAuthorization(status location.Authorization) {
	h.authorizations <- status
}

type countingDetector struct {
	calls int32
}

func (d *countingDetector) DetectFix(_ context.Context) (location.Fix, error) {
	atomic.AddInt32(&d.calls, 1)
	return location.Fix{Latitude: 1, Longitude: 2, Source: SourceStatic}, nil
}

func (d *countingDetector) count() int32 {
	return atomic.LoadInt32(&d.calls)
}

func TestParseConsent(t *testing.T) {
	consent, err := ParseConsent(" Granted")
	assert.NoError(t, err)
	assert.Equal(t, ConsentGranted, consent)

	consent, err = ParseConsent("undetermined")
	assert.NoError(t, err)
	assert.Equal(t, ConsentUndetermined, consent)

	_, err = ParseConsent("maybe")
	assert.Error(t, err)
}

func TestSession_AuthorizationFromConsent(t *testing.T) {
	detector := NewStaticDetector(1, 2, 0)

	assert.Equal(t, location.AuthorizationWhenInUse, NewSession(detector, time.Second, ConsentGranted).Authorization())
	assert.Equal(t, location.AuthorizationDenied, NewSession(detector, time.Second, ConsentDenied).Authorization())
	assert.Equal(t, location.AuthorizationNotDetermined, NewSession(detector, time.Second, ConsentUndetermined).Authorization())
}

func TestSession_RequestAuthorizationAnswersAsynchronously(t *testing.T) {
	handler := newHandlerMock()
	session := NewSession(NewStaticDetector(1, 2, 0), time.Second, ConsentUndetermined)
	session.SetHandler(handler)

	session.RequestAuthorization()
	session.RequestAuthorization()

	select {
	case status := <-handler.authorizations:
		assert.Equal(t, location.AuthorizationWhenInUse, status)
	case <-time.After(time.Second):
		require.FailNow(t, "authorization was not answered")
	}
	assert.Equal(t, location.AuthorizationWhenInUse, session.Authorization())

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, handler.authorizations, 0)
}

func TestSession_RequestAuthorizationKeepsDenial(t *testing.T) {
	handler := newHandlerMock()
	session := NewSession(NewStaticDetector(1, 2, 0), time.Second, ConsentDenied)
	session.SetHandler(handler)

	session.RequestAuthorization()

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, handler.authorizations, 0)
	assert.Equal(t, location.AuthorizationDenied, session.Authorization())
}

func TestSession_ServicesEnabled(t *testing.T) {
	assert.True(t, NewSession(NewStaticDetector(1, 2, 0), time.Second, ConsentGranted).ServicesEnabled())
	assert.False(t, NewSession(nil, time.Second, ConsentGranted).ServicesEnabled())
}

func TestSession_DeliversFixesUntilStopped(t *testing.T) {
	handler := newHandlerMock()
	session := NewSession(NewStaticDetector(54.687157, 25.279652, 10), 10*time.Millisecond, ConsentGranted)
	session.SetHandler(handler)

	session.StartUpdates()
	assert.True(t, session.Running())

	for i := 0; i < 2; i++ {
		select {
		case fix := <-handler.fixes:
			assert.Equal(t, 54.687157, fix.Latitude)
			assert.Equal(t, 25.279652, fix.Longitude)
			assert.Equal(t, SourceStatic, fix.Source)
		case <-time.After(time.Second):
			require.FailNow(t, "fix was not delivered")
		}
	}

	session.StopUpdates()
	session.StopUpdates()
	assert.False(t, session.Running())

	time.Sleep(30 * time.Millisecond)
	for len(handler.fixes) > 0 {
		<-handler.fixes
	}
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, handler.fixes, 0)
}

func TestSession_StartUpdatesIsIdempotent(t *testing.T) {
	detector := &countingDetector{}
	session := NewSession(detector, time.Hour, ConsentGranted)
	session.SetHandler(newHandlerMock())

	session.StartUpdates()
	session.StartUpdates()
	defer session.StopUpdates()

	assert.Eventually(t, func() bool { return detector.count() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), detector.count())
}

func TestSession_ReportsDetectionErrors(t *testing.T) {
	handler := newHandlerMock()
	session := NewSession(NewFailingDetector(errors.New("no route to host")), time.Hour, ConsentGranted)
	session.SetHandler(handler)

	session.StartUpdates()
	defer session.StopUpdates()

	select {
	case err := <-handler.errors:
		assert.EqualError(t, err, "no route to host")
	case <-time.After(time.Second):
		require.FailNow(t, "error was not delivered")
	}
}

func TestSession_ServesManager(t *testing.T) {
	session := NewSession(NewStaticDetector(54.687157, 25.279652, 10), time.Hour, ConsentUndetermined)
	store := locationstore.NewStore(boltdbtest.CreateDB(t))
	manager := location.NewManager(location.ManagerDeps{
		Provider:  session,
		Cache:     store,
		Publisher: eventbus.New(),
	}, 0)

	latitude, longitude := manager.CurrentLocation(5 * time.Second)

	assert.Equal(t, "54.687157", latitude)
	assert.Equal(t, "25.279652", longitude)
	assert.Eventually(t, func() bool { return !session.Running() }, time.Second, time.Millisecond)

	cached, err := store.Coordinate()
	require.NoError(t, err)
	assert.Equal(t, "54.687157", cached.Latitude)
}
