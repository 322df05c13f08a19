package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteArray_MarshalAsNumbers(t *testing.T) {
	env := CipherEnvelope{IV: ByteArray{0, 1, 255}, Content: ByteArray{}}

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"iv":[0,1,255],"content":[]}`, string(data))
}

func TestByteArray_UnmarshalNumbersAndBase64(t *testing.T) {
	var env CipherEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"iv":[7,8,9],"content":"AQID"}`), &env))
	assert.Equal(t, ByteArray{7, 8, 9}, env.IV)
	assert.Equal(t, ByteArray{1, 2, 3}, env.Content)

	var b ByteArray
	require.NoError(t, json.Unmarshal([]byte(`null`), &b))
	assert.Nil(t, b)
}

func TestByteArray_UnmarshalRejectsOutOfRange(t *testing.T) {
	var b ByteArray
	assert.Error(t, json.Unmarshal([]byte(`[1,256]`), &b))
	assert.Error(t, json.Unmarshal([]byte(`[-1]`), &b))
	assert.Error(t, json.Unmarshal([]byte(`"not base64!"`), &b))
}

func TestVaultRecord_JSONShape(t *testing.T) {
	rec := VaultRecord{
		Salt:          ByteArray{1, 2},
		EncryptedData: &CipherEnvelope{IV: ByteArray{3}, Content: ByteArray{4}},
		PendingClips:  []PendingClip{{Content: "foo", Timestamp: 10}},
		Monitoring:    true,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"salt":[1,2],
		"encryptedData":{"iv":[3],"content":[4]},
		"pendingClips":[{"content":"foo","timestamp":10}],
		"monitoring":true
	}`, string(data))
	assert.True(t, rec.Initialized())
	assert.False(t, VaultRecord{}.Initialized())
}
