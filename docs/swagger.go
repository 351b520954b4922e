// Package docs SafeDumaGuide API.
//
// Backend API for the SafeDumaGuide community safety app. Serves the
// directory of safety-relevant places (police stations, hospitals,
// evacuation centers), emergency hotlines, safety tips and incident
// reporting for residents of Dumaguete City.
//
// Main features:
// - Place directory grouped by category with free-text category resolution
// - Account registration, sign-in and password management
// - User profiles with avatar upload
// - Emergency incident reports
// - Emergency hotline numbers and safety tips
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
