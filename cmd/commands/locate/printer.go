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

package locate

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/peraking/locator/tequilapi/contract"
)

const unknownLocation = "Location unknown"

type printer struct {
	writer io.Writer
	asJSON bool
}

func newPrinter(writer io.Writer, asJSON bool) *printer {
	return &printer{writer: writer, asJSON: asJSON}
}

func (p *printer) location(dto contract.LocationDTO) error {
	if p.asJSON {
		return p.json(dto)
	}
	if dto.Latitude == "" || dto.Longitude == "" {
		_, err := fmt.Fprintln(p.writer, unknownLocation)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "%s,%s\n", dto.Latitude, dto.Longitude)
	return err
}

func (p *printer) address(dto contract.AddressDTO) error {
	if p.asJSON {
		return p.json(dto)
	}
	if dto.Latitude == "" || dto.Longitude == "" {
		_, err := fmt.Fprintln(p.writer, unknownLocation)
		return err
	}

	table := tabwriter.NewWriter(p.writer, 0, 0, 1, ' ', 0)
	rows := [][2]string{
		{"Latitude", dto.Latitude},
		{"Longitude", dto.Longitude},
		{"Street", dto.Street},
		{"District", dto.District},
		{"City", dto.City},
		{"Province", dto.Province},
		{"Country", dto.Country},
		{"Country code", dto.CountryCode},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(table, "%s:\t%s\n", row[0], row[1])
	}
	return table.Flush()
}

func (p *printer) json(v interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
