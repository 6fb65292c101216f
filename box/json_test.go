package box

import (
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMarshalJSON(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		b, err := Of(nil, 42)
		require.NoError(t, err)

		data, err := b.MarshalJSON()
		require.NoError(t, err)
		require.True(t, gjson.ValidBytes(data))
		assert.Equal(t, "int", gjson.GetBytes(data, "type").String())
		assert.Equal(t, "inline", gjson.GetBytes(data, "storage").String())
		assert.Equal(t, int64(42), gjson.GetBytes(data, "value").Int())
	})

	t.Run("heap struct", func(t *testing.T) {
		b, err := Of(NewHeap(), tags{names: []string{"x"}})
		require.NoError(t, err)

		data, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, "box.tags", gjson.GetBytes(data, "type").String())
		assert.Equal(t, "heap", gjson.GetBytes(data, "storage").String())
		assert.True(t, gjson.GetBytes(data, "value").IsObject())
	})

	t.Run("exported fields", func(t *testing.T) {
		b, err := Of(nil, point{X: 1, Y: 2})
		require.NoError(t, err)

		data, err := b.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, int64(1), gjson.GetBytes(data, "value.X").Int())
		assert.Equal(t, int64(2), gjson.GetBytes(data, "value.Y").Int())
	})

	t.Run("empty", func(t *testing.T) {
		data, err := New(nil).MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"void","storage":"empty","value":null}`, string(data))

		data[0] = ' '
		again, err := New(nil).MarshalJSON()
		require.NoError(t, err)
		assert.True(t, gjson.ValidBytes(again), "callers cannot corrupt the template")
	})

	t.Run("unsupported value", func(t *testing.T) {
		b, err := Of(nil, func() {})
		require.NoError(t, err)
		_, err = b.MarshalJSON()
		assert.Error(t, err)
	})
}

func TestString(t *testing.T) {
	b, err := Of(nil, 42)
	require.NoError(t, err)
	assert.Equal(t, "box[int inline](42)", b.String())

	require.NoError(t, Set(b, "hi"))
	assert.Equal(t, "box[string heap](hi)", b.String())

	b.Reset()
	assert.Equal(t, "box(void)", b.String())
}

func TestLogValue(t *testing.T) {
	b, err := Of(nil, 7)
	require.NoError(t, err)

	v := b.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())
	attrs := v.Group()
	require.Len(t, attrs, 3)
	assert.Equal(t, "int", attrs[0].Value.String())
	assert.Equal(t, "inline", attrs[1].Value.String())
	assert.Equal(t, int64(7), attrs[2].Value.Int64())

	b.Reset()
	assert.Len(t, b.LogValue().Group(), 2)
}
