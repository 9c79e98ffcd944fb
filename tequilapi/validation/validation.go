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

package validation

import (
	"encoding/json"
)

// FieldError structure is produced by validator
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorList contains list of FieldError
type FieldErrorList struct {
	list []FieldError
}

// AddError adds an error to the list
func (fel *FieldErrorList) AddError(code string, message string) {
	fel.list = append(fel.list, FieldError{code, message})
}

// MarshalJSON writes the list as a plain JSON array
func (fel FieldErrorList) MarshalJSON() ([]byte, error) {
	return json.Marshal(fel.list)
}

// FieldErrorMap groups errors by the name of the field they belong to
type FieldErrorMap struct {
	errorMap map[string]*FieldErrorList
}

// NewErrorMap returns an empty FieldErrorMap
func NewErrorMap() *FieldErrorMap {
	return &FieldErrorMap{make(map[string]*FieldErrorList)}
}

// ForField returns the error list of a field, creating it on first use
func (fem *FieldErrorMap) ForField(key string) *FieldErrorList {
	fieldErrors, exist := fem.errorMap[key]
	if !exist {
		fieldErrors = &FieldErrorList{}
		fem.errorMap[key] = fieldErrors
	}
	return fieldErrors
}

// MarshalJSON writes non empty field lists only
func (fem FieldErrorMap) MarshalJSON() ([]byte, error) {
	nonEmpty := make(map[string]*FieldErrorList, len(fem.errorMap))
	for field, errs := range fem.errorMap {
		if len(errs.list) > 0 {
			nonEmpty[field] = errs
		}
	}
	return json.Marshal(nonEmpty)
}

// HasErrors reports whether any field has an error
func (fem *FieldErrorMap) HasErrors() bool {
	for _, errs := range fem.errorMap {
		if len(errs.list) > 0 {
			return true
		}
	}
	return false
}
