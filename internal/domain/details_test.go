package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedDetailsPreservesKeyOrder(t *testing.T) {
	var d OrderedDetails
	payload := `{"zeta":"1","alpha":2,"mid":true,"omega":null}`
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	require.Len(t, d, 4)
	assert.Equal(t, "zeta", d[0].Key)
	assert.Equal(t, "alpha", d[1].Key)
	assert.Equal(t, "mid", d[2].Key)
	assert.Equal(t, "omega", d[3].Key)

	assert.Equal(t, "1", d[0].Display())
	assert.Equal(t, "2", d[1].Display())
	assert.Equal(t, "true", d[2].Display())
	assert.Equal(t, "", d[3].Display())
}

func TestOrderedDetailsMarshalRoundTrip(t *testing.T) {
	var d OrderedDetails
	payload := `{"b":"two","a":"one"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	// order survives re-encoding; a map would sort these
	assert.Equal(t, `{"b":"two","a":"one"}`, string(out))
}

func TestOrderedDetailsNullAndAbsent(t *testing.T) {
	var d OrderedDetails
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Nil(t, d)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out), "nil details still dump as an empty object")
}

func TestOrderedDetailsRejectsNonObject(t *testing.T) {
	var d OrderedDetails
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &d))
}

func TestFlexTextAcceptsScalars(t *testing.T) {
	var item RecommendationItem
	payload := `{"build_name":"X","estimated_price":74999.5,"ram":"32GB"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &item))

	assert.Equal(t, "74999.5", item.EstimatedPrice.String())
	assert.Equal(t, "32GB", item.RAM.String())
	assert.Equal(t, "", item.GPU.String())
}
