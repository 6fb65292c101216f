package box

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

var snapshotJSON = []byte(`{"type":"void","storage":"empty","value":null}`)

// String renders b for diagnostics, e.g. "box[int inline](42)".
func (b *Box) String() string {
	if b.IsEmpty() {
		return "box(void)"
	}
	return fmt.Sprintf("box[%s %s](%v)", b.vt.id, b.storage, b.vt.load(b))
}

// LogValue implements slog.LogValuer.
func (b *Box) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", b.TypeOf().String()),
		slog.String("storage", b.storage.String()),
	}
	if !b.IsEmpty() {
		attrs = append(attrs, slog.Any("value", b.vt.load(b)))
	}
	return slog.GroupValue(attrs...)
}

// MarshalJSON renders a snapshot of b with the type name, the storage and
// the JSON form of the value. It is meant for logs and debugging output, there
// is no way back.
func (b *Box) MarshalJSON() ([]byte, error) {
	if b.IsEmpty() {
		return bytes.Clone(snapshotJSON), nil
	}
	result := snapshotJSON

	var err error
	result, err = sjson.SetBytes(result, "type", b.vt.id.String())
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "storage", b.storage.String())
	if err != nil {
		return nil, err
	}

	valueBytes, err := json.Marshal(b.vt.load(b))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s value: %w", b.vt.id, err)
	}
	return sjson.SetRawBytes(result, "value", valueBytes)
}
