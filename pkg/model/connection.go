package model

import (
	"time"
)

// Vendor types for the PMS systems the adapter layer understands.
const (
	VendorOpera     = "opera"
	VendorFidelio   = "fidelio"
	VendorProtel    = "protel"
	VendorMews      = "mews"
	VendorCloudbeds = "cloudbeds"
	VendorRMS       = "rms"
	VendorCustom    = "custom"
)

// Connection lifecycle states. Transitions happen only through the sync
// lifecycle: syncing on sync start, then connected or error.
const (
	StatusDisconnected = "disconnected"
	StatusConnected    = "connected"
	StatusError        = "error"
	StatusSyncing      = "syncing"
)

const (
	AuthAPIKey    = "api_key"
	AuthOAuth     = "oauth"
	AuthBasicAuth = "basic_auth"
)

const (
	SyncRealTime = "real_time"
	SyncHourly   = "hourly"
	SyncDaily    = "daily"
	SyncManual   = "manual"
)

type Connection struct {
	ID            string    `json:"id,omitempty" bson:"id,omitempty"`
	Name          string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Type          string    `json:"type" bson:"type" validate:"required,oneof=opera fidelio protel mews cloudbeds rms custom"`
	Status        string    `json:"status,omitempty" bson:"status" validate:"omitempty,oneof=connected disconnected error syncing"`
	LastSync      time.Time `json:"last_sync,omitempty" bson:"last_sync,omitempty"`
	APIEndpoint   string    `json:"api_endpoint" bson:"api_endpoint" validate:"required,api_endpoint"`
	AuthType      string    `json:"auth_type" bson:"auth_type" validate:"required,oneof=api_key oauth basic_auth"`
	SyncFrequency string    `json:"sync_frequency" bson:"sync_frequency" validate:"required,oneof=real_time hourly daily manual"`
}
