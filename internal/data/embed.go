// Package data embeds the airport and aircraft reference tables.
package data

import _ "embed"

//go:embed airports.json
var AirportsJSON []byte

//go:embed planes.json
var PlanesJSON []byte
