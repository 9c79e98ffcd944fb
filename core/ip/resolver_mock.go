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

package ip

// NewResolverMock returns mockResolver which resolves statically entered IP.
func NewResolverMock(ipAddress string) Resolver {
	return &mockResolver{
		ipAddress: ipAddress,
	}
}

// NewResolverMockFailing returns mockResolver with entered error
func NewResolverMockFailing(err error) Resolver {
	return &mockResolver{
		err: err,
	}
}

type mockResolver struct {
	ipAddress string
	err       error
}

func (client *mockResolver) GetPublicIP() (string, error) {
	return client.ipAddress, client.err
}
