package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/streambind/errors"
)

// todoInstance mirrors the shape a typical binding stream carries.
type todoInstance struct {
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

var (
	decodeKey      = JSONDecoder[string]()
	encodeKey      = JSONEncoder[string]()
	decodeInstance = JSONDecoder[todoInstance]()
	encodeInstance = JSONEncoder[todoInstance]()
)

func TestDecodeBinding_FullEnvelope(t *testing.T) {
	raw := []byte(`{"stream":"todo","payload":{"model":"todo","data":{"description":"buy milk","is_done":false},"pk":"42","action":"update"}}`)

	decoded, err := DecodeBinding(raw, decodeKey, decodeInstance)
	require.NoError(t, err)

	assert.Equal(t, "todo", decoded.Model)
	assert.Equal(t, ActionUpdate, decoded.Action)
	require.NotNil(t, decoded.PK)
	assert.Equal(t, "42", *decoded.PK)
	require.NotNil(t, decoded.Data)
	assert.Equal(t, todoInstance{Description: "buy milk", IsDone: false}, *decoded.Data)
}

func TestDecodeBinding_UnknownActionIsNotAnError(t *testing.T) {
	raw := []byte(`{"stream":"todo","payload":{"model":"todo","data":{"description":"x","is_done":true},"pk":"1","action":"archive"}}`)

	decoded, err := DecodeBinding(raw, decodeKey, decodeInstance)
	require.NoError(t, err)
	assert.Equal(t, Action("archive"), decoded.Action)
	assert.False(t, decoded.Action.Known())
}

func TestDecodeBinding_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `this is not json`},
		{"missing payload", `{"stream":"todo"}`},
		{"null payload", `{"stream":"todo","payload":null}`},
		{"payload is array", `{"stream":"todo","payload":[]}`},
		{"missing action", `{"stream":"todo","payload":{"model":"todo","data":{},"pk":"1"}}`},
		{"numeric action", `{"stream":"todo","payload":{"model":"todo","data":{},"pk":"1","action":7}}`},
		{"numeric model", `{"stream":"todo","payload":{"model":3,"data":{},"pk":"1","action":"update"}}`},
		{"missing pk on update", `{"stream":"todo","payload":{"model":"todo","data":{},"action":"update"}}`},
		{"missing pk on delete", `{"stream":"todo","payload":{"model":"todo","action":"delete"}}`},
		{"missing data on create", `{"stream":"todo","payload":{"model":"todo","action":"create"}}`},
		{"missing data on update", `{"stream":"todo","payload":{"model":"todo","pk":"1","action":"update"}}`},
		{"pk type mismatch", `{"stream":"todo","payload":{"model":"todo","data":{},"pk":[1],"action":"delete"}}`},
		{"data type mismatch", `{"stream":"todo","payload":{"model":"todo","data":"nope","pk":"1","action":"update"}}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeBinding([]byte(test.raw), decodeKey, decodeInstance)
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err), "decode errors must classify as invalid: %v", err)
		})
	}
}

func TestDecodeBinding_ModelIsOptional(t *testing.T) {
	// Client-originated envelopes never carry model.
	raw := []byte(`{"stream":"todo","payload":{"pk":"1","action":"delete"}}`)

	decoded, err := DecodeBinding(raw, decodeKey, decodeInstance)
	require.NoError(t, err)
	assert.Empty(t, decoded.Model)
	assert.Nil(t, decoded.Data)
}

func TestDecodeBinding_CreateWithoutPK(t *testing.T) {
	// A client-encoded create has data and action only.
	raw := []byte(`{"stream":"todo","payload":{"action":"create","data":{"description":"x","is_done":false}}}`)

	decoded, err := DecodeBinding(raw, decodeKey, decodeInstance)
	require.NoError(t, err)
	assert.Equal(t, ActionCreate, decoded.Action)
	assert.Nil(t, decoded.PK)
	require.NotNil(t, decoded.Data)
	assert.Equal(t, "x", decoded.Data.Description)
}

func TestEncodeBinding_FieldSetPerAction(t *testing.T) {
	pk := "9"
	data := todoInstance{Description: "x", IsDone: false}

	tests := []struct {
		name     string
		action   Action
		pk       *string
		data     *todoInstance
		expected string
	}{
		{
			name:     "create omits pk",
			action:   ActionCreate,
			pk:       &pk, // supplied but outside create's field set
			data:     &data,
			expected: `{"stream":"todo","payload":{"action":"create","data":{"description":"x","is_done":false}}}`,
		},
		{
			name:     "update carries pk action data",
			action:   ActionUpdate,
			pk:       &pk,
			data:     &data,
			expected: `{"stream":"todo","payload":{"pk":"9","action":"update","data":{"description":"x","is_done":false}}}`,
		},
		{
			name:     "delete omits data",
			action:   ActionDelete,
			pk:       &pk,
			data:     &data,
			expected: `{"stream":"todo","payload":{"pk":"9","action":"delete"}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			text, err := EncodeBinding("todo", test.action, test.pk, test.data, encodeKey, encodeInstance)
			require.NoError(t, err)
			assert.Equal(t, test.expected, string(text))
		})
	}
}

func TestEncodeBinding_Errors(t *testing.T) {
	pk := "1"
	data := todoInstance{}

	tests := []struct {
		name   string
		action Action
		pk     *string
		data   *todoInstance
	}{
		{"unknown action", Action("archive"), &pk, &data},
		{"update without pk", ActionUpdate, nil, &data},
		{"delete without pk", ActionDelete, nil, nil},
		{"create without data", ActionCreate, nil, nil},
		{"update without data", ActionUpdate, &pk, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := EncodeBinding("todo", test.action, test.pk, test.data, encodeKey, encodeInstance)
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pk := "17"
	data := todoInstance{Description: "round trip", IsDone: true}

	tests := []struct {
		name       string
		action     Action
		pk         *string
		data       *todoInstance
		expectPK   bool
		expectData bool
	}{
		{"create", ActionCreate, nil, &data, false, true},
		{"update", ActionUpdate, &pk, &data, true, true},
		{"delete", ActionDelete, &pk, nil, true, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			text, err := EncodeBinding("todo", test.action, test.pk, test.data, encodeKey, encodeInstance)
			require.NoError(t, err)

			decoded, err := DecodeBinding(text, decodeKey, decodeInstance)
			require.NoError(t, err)
			assert.Equal(t, test.action, decoded.Action)

			if test.expectPK {
				require.NotNil(t, decoded.PK)
				assert.Equal(t, pk, *decoded.PK)
			} else {
				assert.Nil(t, decoded.PK)
			}

			if test.expectData {
				require.NotNil(t, decoded.Data)
				assert.Equal(t, data, *decoded.Data)
			} else {
				assert.Nil(t, decoded.Data)
			}
		})
	}
}

func TestDecodeBinding_IntKeys(t *testing.T) {
	raw := []byte(`{"stream":"todo","payload":{"model":"todo","data":{"description":"n","is_done":false},"pk":7,"action":"update"}}`)

	decoded, err := DecodeBinding(raw, JSONDecoder[int](), decodeInstance)
	require.NoError(t, err)
	require.NotNil(t, decoded.PK)
	assert.Equal(t, 7, *decoded.PK)
}
