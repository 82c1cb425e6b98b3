// Package model defines the wheel specification record and the static
// naming table that translates between the external camelCase field
// names and the internal snake_case column names.
package model
