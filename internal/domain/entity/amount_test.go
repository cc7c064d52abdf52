package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAmountAcceptsNumbersAndNumericStrings(t *testing.T) {
	var body struct {
		Price Amount `json:"price"`
		Total Amount `json:"total"`
		Empty Amount `json:"empty"`
	}
	err := json.Unmarshal([]byte(`{"price": 1250.5, "total": " 99.99 ", "empty": null}`), &body)
	require.NoError(t, err)

	assert.Equal(t, Amount(1250.5), body.Price)
	assert.Equal(t, Amount(99.99), body.Total)
	assert.Equal(t, Amount(0), body.Empty)
}

func TestAmountRejectsNonNumericStrings(t *testing.T) {
	var body struct {
		Price Amount `json:"price"`
	}
	err := json.Unmarshal([]byte(`{"price": "twelve"}`), &body)
	assert.Error(t, err)
}

func TestAmountMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), Amount(19.99).MinorUnits())
	assert.Equal(t, int64(1000), Amount(10).MinorUnits())
	assert.Equal(t, int64(1), Amount(0.005).MinorUnits())
}

func TestAmountDecodesLegacyBSON(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"a": "42.50", "b": int32(7), "c": 3.25})
	require.NoError(t, err)

	var doc struct {
		A Amount `bson:"a"`
		B Amount `bson:"b"`
		C Amount `bson:"c"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, Amount(42.5), doc.A)
	assert.Equal(t, Amount(7), doc.B)
	assert.Equal(t, Amount(3.25), doc.C)
}
