package repository

import (
	"testing"
	"time"

	"pmshub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

func TestConnectionListDocRoundTrip(t *testing.T) {
	lastSync := time.Date(2026, 8, 30, 14, 5, 9, 250_000_000, time.UTC)
	doc := connectionListDoc{
		DocID:  listKey("user-1"),
		UserID: "user-1",
		Connections: []model.Connection{
			{
				ID:            "conn_1",
				Name:          "Grand Hotel Opera",
				Type:          model.VendorOpera,
				Status:        model.StatusConnected,
				LastSync:      lastSync,
				APIEndpoint:   "https://api.opera.example.com/v1",
				AuthType:      model.AuthAPIKey,
				SyncFrequency: model.SyncHourly,
			},
			{
				ID:            "conn_2",
				Name:          "Seaside Mews",
				Type:          model.VendorMews,
				Status:        model.StatusDisconnected,
				APIEndpoint:   "https://api.mews.example.com",
				AuthType:      model.AuthOAuth,
				SyncFrequency: model.SyncManual,
			},
		},
		UpdatedAt: lastSync,
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got connectionListDoc
	if err := bson.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.DocID != doc.DocID {
		t.Errorf("DocID = %q, want %q", got.DocID, doc.DocID)
	}
	if got.UserID != doc.UserID {
		t.Errorf("UserID = %q, want %q", got.UserID, doc.UserID)
	}
	if !got.UpdatedAt.Equal(doc.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, doc.UpdatedAt)
	}
	if len(got.Connections) != len(doc.Connections) {
		t.Fatalf("len(Connections) = %d, want %d", len(got.Connections), len(doc.Connections))
	}

	for i, want := range doc.Connections {
		conn := got.Connections[i]
		if conn.ID != want.ID {
			t.Errorf("conn %d: ID = %q, want %q", i, conn.ID, want.ID)
		}
		if conn.Name != want.Name {
			t.Errorf("conn %d: Name = %q, want %q", i, conn.Name, want.Name)
		}
		if conn.Type != want.Type {
			t.Errorf("conn %d: Type = %q, want %q", i, conn.Type, want.Type)
		}
		if conn.Status != want.Status {
			t.Errorf("conn %d: Status = %q, want %q", i, conn.Status, want.Status)
		}
		if !conn.LastSync.Equal(want.LastSync) {
			t.Errorf("conn %d: LastSync = %v, want %v", i, conn.LastSync, want.LastSync)
		}
		if conn.APIEndpoint != want.APIEndpoint {
			t.Errorf("conn %d: APIEndpoint = %q, want %q", i, conn.APIEndpoint, want.APIEndpoint)
		}
		if conn.AuthType != want.AuthType {
			t.Errorf("conn %d: AuthType = %q, want %q", i, conn.AuthType, want.AuthType)
		}
		if conn.SyncFrequency != want.SyncFrequency {
			t.Errorf("conn %d: SyncFrequency = %q, want %q", i, conn.SyncFrequency, want.SyncFrequency)
		}
	}
}
