package swikly

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReclaim_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		status  ReclaimStatus
		wantErr bool
	}{
		{"initialized", `{"id":"r","status":"Initialized"}`, ReclaimInitialized, false},
		{"initialized with finishedAt", `{"id":"r","status":"Initialized","finishedAt":"2025-01-01T00:00:00Z"}`, ReclaimInitialized, false},
		{"finished", `{"id":"r","status":"Finished","finishedAt":"2025-01-01T00:00:00Z"}`, ReclaimFinished, false},
		{"finished without finishedAt", `{"id":"r","status":"Finished"}`, "", true},
		{"finished with null finishedAt", `{"id":"r","status":"Finished","finishedAt":null}`, "", true},
		{"unknown status", `{"id":"r","status":"Pending"}`, "", true},
		{"missing status", `{"id":"r"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Reclaim
			err := json.Unmarshal([]byte(tt.json), &r)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReclaim)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, r.Status)
		})
	}
}

func TestReclaim_UnmarshalMalformed(t *testing.T) {
	var r Reclaim
	err := json.Unmarshal([]byte(`{"id":1}`), &r)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidReclaim)
}

func TestRequest_ToleratesUnknownFields(t *testing.T) {
	var env requestEnvelope
	require.NoError(t, json.Unmarshal([]byte(requestJSON), &env))
	assert.Equal(t, "req_1", env.Request.ID)
}

func TestRequest_EndUserKeptRaw(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"id":"req_1","endUser":{"type":"person","id":"per_1"}}`), &req))
	assert.JSONEq(t, `{"type":"person","id":"per_1"}`, string(req.EndUser))
}

func TestCreateRequestParams_OmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(CreateRequestParams{Description: "d", Language: "en"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"d","language":"en"}`, string(data))

	data, err = json.Marshal(CreateRequestParams{
		Description: "d",
		Language:    "en",
		SendSMS:     Bool(false),
		PartnerTag:  String(""),
		Callbacks:   Object{"requestSecured": "https://example.com/hook"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"d","language":"en","sendSms":false,"partnerTag":"","callbacks":{"requestSecured":"https://example.com/hook"}}`, string(data))
}

func TestUpdateDepositParams_OmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(UpdateDepositParams{Amount: Int64(0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":0}`, string(data))
}
